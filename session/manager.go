package session

import (
	"sync"
	"time"

	"nizami_cinema/constants"

	"github.com/jonboulle/clockwork"
)

// DefaultsFunc supplies the initial date/time for a fresh session
// (the first schedule pills, like the page preselects them).
type DefaultsFunc func() (date, timeSlot string)

// Manager owns one Session per visitor cookie.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	clock    clockwork.Clock
	isBooked BookedFunc
	isValid  ValidFunc
	defaults DefaultsFunc
	holdFor  time.Duration
	maxSeats int
}

func NewManager(clock clockwork.Clock, isBooked BookedFunc, isValid ValidFunc, defaults DefaultsFunc) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		clock:    clock,
		isBooked: isBooked,
		isValid:  isValid,
		defaults: defaults,
		holdFor:  constants.HoldDuration,
		maxSeats: constants.MaxSeatsPerBooking,
	}
}

// Get returns the session for an id, creating an empty one on first use
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}

	date, timeSlot := "", ""
	if m.defaults != nil {
		date, timeSlot = m.defaults()
	}
	s := &Session{
		id:        id,
		date:      date,
		timeSlot:  timeSlot,
		clock:     m.clock,
		lastTouch: m.clock.Now(),
		isBooked:  m.isBooked,
		isValid:   m.isValid,
		holdFor:   m.holdFor,
		maxSeats:  m.maxSeats,
	}
	m.sessions[id] = s
	return s
}

// Sweep drops sessions idle longer than maxIdle and returns the count
func (m *Manager) Sweep(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.clock.Now().Add(-maxIdle)
	removed := 0
	for id, s := range m.sessions {
		if s.LastTouch().Before(cutoff) {
			s.mu.Lock()
			s.stopHoldLocked()
			s.mu.Unlock()
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

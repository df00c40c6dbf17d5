package session

import (
	"errors"
	"sync"
	"time"

	"nizami_cinema/constants"

	"github.com/jonboulle/clockwork"
)

// BookedFunc answers whether a seat is booked for a (date,time) pair.
// Injected so the machine stays independent of config and storage.
type BookedFunc func(date, timeSlot, seatID string) bool

// ValidFunc answers whether a seat id exists on the theater grid at all
type ValidFunc func(seatID string) bool

type Status string

const (
	StatusNoSelection Status = "NO_SELECTION"
	StatusSelecting   Status = "SELECTING"
	StatusSubmitting  Status = "SUBMITTING"
	StatusCompleted   Status = "COMPLETED"
)

var (
	ErrSeatBooked  = errors.New(constants.MSG_SEAT_BOOKED)
	ErrSeatLimit   = errors.New(constants.MSG_SEAT_LIMIT)
	ErrNoSeats     = errors.New(constants.MSG_NO_SEATS)
	ErrUnknownSeat = errors.New(constants.MSG_UNKNOWN_SEAT)
)

// Session is one visitor's seat-selection state machine. All state a
// checkout needs lives here, handlers never keep selection state of
// their own. Mutations recompute nothing eagerly: seat statuses and
// totals are derived at read time.
type Session struct {
	mu sync.Mutex

	id       string
	date     string
	timeSlot string
	seats    []string // ordered, unique, len <= maxSeats

	submitting bool
	completed  bool
	expired    bool // latched on hold expiry, cleared by the next Snapshot

	clock     clockwork.Clock
	holdTimer clockwork.Timer
	deadline  time.Time

	lastTouch time.Time

	isBooked BookedFunc
	isValid  ValidFunc
	holdFor  time.Duration
	maxSeats int
}

type Snapshot struct {
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Seats         []string `json:"seats"`
	Status        Status   `json:"status"`
	HoldRemaining int      `json:"holdRemaining"` // seconds, 0 when no hold running
	Expired       bool     `json:"expired"`       // hold ran out since the last read
}

func (s *Session) ID() string { return s.id }

// SelectDate replaces the date and silently discards any selection
func (s *Session) SelectDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.date = date
	s.clearSeatsLocked()
}

// SelectTime replaces the time and silently discards any selection
func (s *Session) SelectTime(timeSlot string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.timeSlot = timeSlot
	s.clearSeatsLocked()
}

// ToggleSeat adds or removes one seat. Seat ids off the grid, booked
// seats and additions past the cap are rejected without touching the
// selection. Any mutation that leaves the selection non-empty restarts
// the hold countdown from the full duration, replacing the running timer.
func (s *Session) ToggleSeat(seatID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.completed = false
	s.submitting = false

	if s.isValid != nil && !s.isValid(seatID) {
		return ErrUnknownSeat
	}
	if s.isBooked != nil && s.isBooked(s.date, s.timeSlot, seatID) {
		return ErrSeatBooked
	}

	for i, id := range s.seats {
		if id == seatID {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			if len(s.seats) == 0 {
				s.stopHoldLocked()
			} else {
				s.restartHoldLocked()
			}
			return nil
		}
	}

	if len(s.seats) >= s.maxSeats {
		return ErrSeatLimit
	}

	s.seats = append(s.seats, seatID)
	s.restartHoldLocked()
	return nil
}

// BeginCheckout moves Selecting → Submitting; a no-op error when the
// selection is empty (the order form never opens without seats).
func (s *Session) BeginCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if len(s.seats) == 0 {
		return ErrNoSeats
	}
	s.submitting = true
	return nil
}

// AbortCheckout returns to Selecting after a failed validation pass
func (s *Session) AbortCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

// Complete finishes a persisted booking: selection cleared, hold stopped
func (s *Session) Complete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.clearSeatsLocked()
	s.submitting = false
	s.completed = true
}

// Seats returns a copy of the current selection
func (s *Session) Seats() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.seats))
	copy(out, s.seats)
	return out
}

func (s *Session) DateTime() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date, s.timeSlot
}

// Total is always |seats| x price, never cached
func (s *Session) Total(price float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(len(s.seats)) * price
}

// Snapshot reads the full state. The expiry notice is read-once: the
// first snapshot after a hold ran out carries Expired=true, later ones
// don't.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	seats := make([]string, len(s.seats))
	copy(seats, s.seats)

	remaining := 0
	if !s.deadline.IsZero() {
		if d := s.deadline.Sub(s.clock.Now()); d > 0 {
			remaining = int(d.Seconds())
		}
	}

	snap := Snapshot{
		Date:          s.date,
		Time:          s.timeSlot,
		Seats:         seats,
		Status:        s.statusLocked(),
		HoldRemaining: remaining,
		Expired:       s.expired,
	}
	s.expired = false
	return snap
}

func (s *Session) LastTouch() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouch
}

func (s *Session) statusLocked() Status {
	switch {
	case s.submitting:
		return StatusSubmitting
	case s.completed:
		return StatusCompleted
	case len(s.seats) > 0:
		return StatusSelecting
	default:
		return StatusNoSelection
	}
}

func (s *Session) touchLocked() {
	s.lastTouch = s.clock.Now()
}

func (s *Session) clearSeatsLocked() {
	s.seats = nil
	s.stopHoldLocked()
}

func (s *Session) stopHoldLocked() {
	if s.holdTimer != nil {
		s.holdTimer.Stop()
		s.holdTimer = nil
	}
	s.deadline = time.Time{}
}

func (s *Session) restartHoldLocked() {
	if s.holdTimer != nil {
		s.holdTimer.Stop()
	}
	s.deadline = s.clock.Now().Add(s.holdFor)
	s.holdTimer = s.clock.AfterFunc(s.holdFor, s.expireHold)
}

// expireHold is the timer callback: forced reset plus the notice latch.
// Not an error path, just the policy timeout running out.
func (s *Session) expireHold() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.seats) == 0 {
		return
	}
	s.seats = nil
	s.holdTimer = nil
	s.deadline = time.Time{}
	s.submitting = false
	s.expired = true
}

package session_test

import (
	"fmt"
	"testing"
	"time"

	"nizami_cinema/session"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, clock clockwork.Clock, isBooked session.BookedFunc, isValid session.ValidFunc) *session.Session {
	t.Helper()
	m := session.NewManager(clock, isBooked, isValid, func() (string, string) {
		return "2026-09-01", "19:00"
	})
	return m.Get("visitor-1")
}

// the hold timer callback may run on its own goroutine after Advance
func waitForHoldExpiry(t *testing.T, s *session.Session) {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(s.Seats()) == 0
	}, time.Second, 5*time.Millisecond, "hold did not expire")
}

func TestToggleSeatAddAndRemove(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestSession(t, clock, nil, nil)

	require.NoError(t, s.ToggleSeat("A1"))
	require.NoError(t, s.ToggleSeat("A2"))
	assert.Equal(t, []string{"A1", "A2"}, s.Seats())

	require.NoError(t, s.ToggleSeat("A1"))
	assert.Equal(t, []string{"A2"}, s.Seats())
}

func TestToggleSeatRejectsBooked(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestSession(t, clock, func(date, timeSlot, seatID string) bool {
		return seatID == "C4"
	}, nil)

	err := s.ToggleSeat("C4")
	assert.ErrorIs(t, err, session.ErrSeatBooked)
	assert.Empty(t, s.Seats())
}

func TestToggleSeatRejectsUnknownSeat(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestSession(t, clock, nil, func(seatID string) bool {
		return seatID == "A1" || seatID == "A2"
	})

	err := s.ToggleSeat("Z999")
	assert.ErrorIs(t, err, session.ErrUnknownSeat)
	assert.Empty(t, s.Seats())

	// known seats still toggle normally
	require.NoError(t, s.ToggleSeat("A1"))
	assert.Equal(t, []string{"A1"}, s.Seats())
}

func TestToggleSeatEnforcesCap(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestSession(t, clock, nil, nil)

	for i := 1; i <= 6; i++ {
		require.NoError(t, s.ToggleSeat(fmt.Sprintf("A%d", i)))
	}

	err := s.ToggleSeat("B1")
	assert.ErrorIs(t, err, session.ErrSeatLimit)
	assert.Len(t, s.Seats(), 6)

	// removing a selected seat is still allowed at the cap
	require.NoError(t, s.ToggleSeat("A3"))
	assert.Len(t, s.Seats(), 5)
}

func TestSelectDateClearsSeats(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestSession(t, clock, nil, nil)

	require.NoError(t, s.ToggleSeat("A1"))
	require.NoError(t, s.ToggleSeat("B2"))

	s.SelectDate("2026-09-02")

	date, timeSlot := s.DateTime()
	assert.Equal(t, "2026-09-02", date)
	assert.Equal(t, "19:00", timeSlot)
	assert.Empty(t, s.Seats())

	// the cleared selection does not count as a hold expiry
	clock.Advance(20 * time.Minute)
	assert.False(t, s.Snapshot().Expired)
}

func TestSelectTimeClearsSeats(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestSession(t, clock, nil, nil)

	require.NoError(t, s.ToggleSeat("A1"))
	s.SelectTime("22:15")

	date, timeSlot := s.DateTime()
	assert.Equal(t, "2026-09-01", date)
	assert.Equal(t, "22:15", timeSlot)
	assert.Empty(t, s.Seats())
}

func TestTotalRecomputesFromSelection(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestSession(t, clock, nil, nil)

	assert.Equal(t, 0.0, s.Total(15))

	require.NoError(t, s.ToggleSeat("A1"))
	require.NoError(t, s.ToggleSeat("A2"))
	require.NoError(t, s.ToggleSeat("A3"))
	assert.Equal(t, 45.0, s.Total(15))

	require.NoError(t, s.ToggleSeat("A3"))
	assert.Equal(t, 30.0, s.Total(15))
}

func TestHoldExpiresAfterFullDuration(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestSession(t, clock, nil, nil)

	require.NoError(t, s.ToggleSeat("A1"))

	clock.Advance(614 * time.Second)
	snap := s.Snapshot()
	assert.Equal(t, []string{"A1"}, snap.Seats)
	assert.False(t, snap.Expired)
	assert.Equal(t, 1, snap.HoldRemaining)

	clock.Advance(1 * time.Second)
	waitForHoldExpiry(t, s)

	snap = s.Snapshot()
	assert.Empty(t, snap.Seats)
	assert.True(t, snap.Expired)
	assert.Equal(t, session.StatusNoSelection, snap.Status)
	assert.Equal(t, 0, snap.HoldRemaining)
}

func TestExpiredNoticeIsReadOnce(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestSession(t, clock, nil, nil)

	require.NoError(t, s.ToggleSeat("A1"))
	clock.Advance(615 * time.Second)
	waitForHoldExpiry(t, s)

	assert.True(t, s.Snapshot().Expired)
	assert.False(t, s.Snapshot().Expired)
}

func TestHoldRestartsOnEveryMutation(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestSession(t, clock, nil, nil)

	require.NoError(t, s.ToggleSeat("A1"))
	clock.Advance(300 * time.Second)

	// second seat restarts the countdown from the full duration
	require.NoError(t, s.ToggleSeat("A2"))
	clock.Advance(600 * time.Second)

	snap := s.Snapshot()
	assert.Equal(t, []string{"A1", "A2"}, snap.Seats)
	assert.False(t, snap.Expired)

	clock.Advance(15 * time.Second)
	waitForHoldExpiry(t, s)

	snap = s.Snapshot()
	assert.Empty(t, snap.Seats)
	assert.True(t, snap.Expired)
}

func TestRemovingLastSeatStopsHold(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestSession(t, clock, nil, nil)

	require.NoError(t, s.ToggleSeat("A1"))
	require.NoError(t, s.ToggleSeat("A1"))

	clock.Advance(20 * time.Minute)
	snap := s.Snapshot()
	assert.False(t, snap.Expired)
	assert.Equal(t, 0, snap.HoldRemaining)
}

func TestCheckoutLifecycle(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestSession(t, clock, nil, nil)

	assert.ErrorIs(t, s.BeginCheckout(), session.ErrNoSeats)

	require.NoError(t, s.ToggleSeat("A1"))
	assert.Equal(t, session.StatusSelecting, s.Snapshot().Status)

	require.NoError(t, s.BeginCheckout())
	assert.Equal(t, session.StatusSubmitting, s.Snapshot().Status)

	s.AbortCheckout()
	assert.Equal(t, session.StatusSelecting, s.Snapshot().Status)

	require.NoError(t, s.BeginCheckout())
	s.Complete()

	snap := s.Snapshot()
	assert.Equal(t, session.StatusCompleted, snap.Status)
	assert.Empty(t, snap.Seats)
	assert.False(t, snap.Expired)
}

func TestManagerReturnsSameSessionPerID(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := session.NewManager(clock, nil, nil, func() (string, string) {
		return "2026-09-01", "12:00"
	})

	a := m.Get("visitor-a")
	b := m.Get("visitor-a")
	assert.Same(t, a, b)

	date, timeSlot := a.DateTime()
	assert.Equal(t, "2026-09-01", date)
	assert.Equal(t, "12:00", timeSlot)

	m.Get("visitor-b")
	assert.Equal(t, 2, m.Len())
}

func TestManagerSweepDropsIdleSessions(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := session.NewManager(clock, nil, nil, nil)

	stale := m.Get("stale")
	require.NoError(t, stale.ToggleSeat("A1"))

	clock.Advance(3 * time.Hour)

	fresh := m.Get("fresh")
	require.NoError(t, fresh.ToggleSeat("B1"))

	removed := m.Sweep(2 * time.Hour)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, m.Len())
	assert.Same(t, fresh, m.Get("fresh"))
}

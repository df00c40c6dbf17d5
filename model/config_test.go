package model_test

import (
	"testing"

	"nizami_cinema/model"

	"github.com/stretchr/testify/assert"
)

func scheduleConfig() *model.BookingConfig {
	return &model.BookingConfig{
		Theater: model.Theater{
			TicketPrice: 15,
			Rows:        []string{"A", "B", "C", "D", "E", "F"},
			SeatsPerRow: 8,
		},
		Schedule: model.Schedule{
			Dates: []model.ScheduleDate{
				{Day: "Mon 1", Date: "2026-09-01"},
				{Day: "Tue 2", Date: "2026-09-02"},
			},
			Times: []string{"12:00", "19:00"},
		},
		BookedSeats: map[string]map[string][]string{
			"2026-09-01": {"19:00": {"B3", "B4"}},
		},
	}
}

func TestBookingConfigDefaults(t *testing.T) {
	cfg := scheduleConfig()
	assert.Equal(t, "2026-09-01", cfg.FirstDate())
	assert.Equal(t, "12:00", cfg.FirstTime())

	empty := &model.BookingConfig{}
	assert.Equal(t, "", empty.FirstDate())
	assert.Equal(t, "", empty.FirstTime())
}

func TestBookingConfigScheduleLookups(t *testing.T) {
	cfg := scheduleConfig()
	assert.True(t, cfg.HasDate("2026-09-02"))
	assert.False(t, cfg.HasDate("2026-09-09"))
	assert.True(t, cfg.HasTime("19:00"))
	assert.False(t, cfg.HasTime("23:59"))
}

func TestHasSeat(t *testing.T) {
	cfg := scheduleConfig()

	for _, id := range []string{"A1", "A8", "F1", "F8", "C4"} {
		assert.True(t, cfg.HasSeat(id), "seat %q should be on the grid", id)
	}
	for _, id := range []string{"Z999", "A0", "A9", "G1", "A", "1", "", "a1", "A1X"} {
		assert.False(t, cfg.HasSeat(id), "seat %q should be off the grid", id)
	}
}

func TestBaselineBooked(t *testing.T) {
	cfg := scheduleConfig()
	assert.Equal(t, []string{"B3", "B4"}, cfg.BaselineBooked("2026-09-01", "19:00"))
	assert.Nil(t, cfg.BaselineBooked("2026-09-01", "12:00"))
	assert.Nil(t, cfg.BaselineBooked("2026-09-05", "19:00"))
}

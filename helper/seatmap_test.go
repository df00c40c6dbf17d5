package helper_test

import (
	"testing"

	"nizami_cinema/helper"
	"nizami_cinema/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *model.BookingConfig {
	return &model.BookingConfig{
		Theater: model.Theater{
			TicketPrice: 15,
			Rows:        []string{"A", "B"},
			SeatsPerRow: 4,
		},
		Schedule: model.Schedule{
			Dates: []model.ScheduleDate{{Day: "Mon 1", Date: "2026-09-01"}},
			Times: []string{"19:00"},
		},
		BookedSeats: map[string]map[string][]string{
			"2026-09-01": {"19:00": {"A1", "B3"}},
		},
	}
}

func TestBookedSetUnionsBaselineAndTaken(t *testing.T) {
	cfg := testConfig()

	set := helper.BookedSet(cfg, []string{"B3", "A2"}, "2026-09-01", "19:00")
	assert.Equal(t, map[string]bool{"A1": true, "A2": true, "B3": true}, set)

	// unknown slot has no baseline, taken entries still count
	set = helper.BookedSet(cfg, []string{"B1"}, "2026-09-02", "12:00")
	assert.Equal(t, map[string]bool{"B1": true}, set)
}

func TestBuildSeatMapStatuses(t *testing.T) {
	cfg := testConfig()
	booked := map[string]bool{"A1": true, "B3": true}

	seatMap := helper.BuildSeatMap(cfg, booked, []string{"A2", "B1"})
	require.Len(t, seatMap, 2)
	require.Len(t, seatMap["A"], 4)
	require.Len(t, seatMap["B"], 4)

	byID := map[string]helper.SeatUI{}
	for _, row := range seatMap {
		for _, seat := range row {
			byID[seat.ID] = seat
		}
	}

	assert.Equal(t, helper.SeatBooked, byID["A1"].Status)
	assert.Equal(t, helper.SeatSelected, byID["A2"].Status)
	assert.Equal(t, helper.SeatBooked, byID["B3"].Status)
	assert.Equal(t, helper.SeatSelected, byID["B1"].Status)
	assert.Equal(t, helper.SeatAvailable, byID["A3"].Status)
	assert.Equal(t, helper.SeatAvailable, byID["B4"].Status)

	assert.Equal(t, "A", byID["A3"].Row)
	assert.Equal(t, 3, byID["A3"].Number)
}

func TestBuildSeatMapBookedWinsOverSelected(t *testing.T) {
	cfg := testConfig()
	booked := map[string]bool{"A1": true}

	seatMap := helper.BuildSeatMap(cfg, booked, []string{"A1"})
	assert.Equal(t, helper.SeatBooked, seatMap["A"][0].Status)
}

func TestSeatConflict(t *testing.T) {
	taken := []string{"A1", "B3"}

	assert.True(t, helper.SeatConflict(taken, []string{"A2", "B3"}))
	assert.True(t, helper.SeatConflict(taken, []string{"A1"}))
	assert.False(t, helper.SeatConflict(taken, []string{"A2", "B4"}))
	assert.False(t, helper.SeatConflict(nil, []string{"A1"}))
	assert.False(t, helper.SeatConflict(taken, nil))
}

func TestMergeSeatIds(t *testing.T) {
	merged := helper.MergeSeatIds([]string{"A1", "A2"}, []string{"A2", "B1"})
	assert.Equal(t, []string{"A1", "A2", "B1"}, merged)

	// replaying the same union is a no-op
	again := helper.MergeSeatIds(merged, []string{"A2", "B1"})
	assert.Equal(t, merged, again)

	assert.Equal(t, []string{"A1"}, helper.MergeSeatIds(nil, []string{"A1", "A1"}))
	assert.Equal(t, []string{"A1"}, helper.MergeSeatIds([]string{"A1"}, nil))
}

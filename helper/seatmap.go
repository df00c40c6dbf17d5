package helper

import (
	"fmt"
	"log"

	"nizami_cinema/database"
	"nizami_cinema/model"
)

// Derived seat statuses. Never stored: recomputed from config baseline,
// taken-seats index and the session selection on every projection.
const (
	SeatAvailable = "available"
	SeatSelected  = "selected"
	SeatBooked    = "booked"
)

type SeatUI struct {
	ID     string `json:"id"`
	Row    string `json:"row"`
	Number int    `json:"number"`
	Status string `json:"status"`
}

// BookedSet unions the configured baseline for (date,time) with the
// durable taken-seats entries, so seats booked in this process render
// as booked without a config reload.
func BookedSet(cfg *model.BookingConfig, taken []string, date, timeSlot string) map[string]bool {
	set := make(map[string]bool)
	for _, id := range cfg.BaselineBooked(date, timeSlot) {
		set[id] = true
	}
	for _, id := range taken {
		set[id] = true
	}
	return set
}

// BuildSeatMap projects the whole grid grouped by row, exactly one of
// booked/selected/available per seat. Selected wins only over available:
// a selection is never allowed to contain a booked seat in the first place.
func BuildSeatMap(cfg *model.BookingConfig, booked map[string]bool, selected []string) map[string][]SeatUI {
	selectedSet := make(map[string]bool, len(selected))
	for _, id := range selected {
		selectedSet[id] = true
	}

	result := make(map[string][]SeatUI, len(cfg.Theater.Rows))
	for _, row := range cfg.Theater.Rows {
		seats := make([]SeatUI, 0, cfg.Theater.SeatsPerRow)
		for n := 1; n <= cfg.Theater.SeatsPerRow; n++ {
			id := fmt.Sprintf("%s%d", row, n)
			status := SeatAvailable
			if booked[id] {
				status = SeatBooked
			} else if selectedSet[id] {
				status = SeatSelected
			}
			seats = append(seats, SeatUI{ID: id, Row: row, Number: n, Status: status})
		}
		result[row] = seats
	}
	return result
}

// SeatConflict reports whether any wanted seat is already in the taken
// list. The checkout transaction re-checks with this under a row lock,
// the selection-time booked check alone can race a concurrent checkout.
func SeatConflict(taken, wanted []string) bool {
	set := make(map[string]bool, len(taken))
	for _, id := range taken {
		set[id] = true
	}
	for _, id := range wanted {
		if set[id] {
			return true
		}
	}
	return false
}

// MergeSeatIds unions added into existing, keeping order and dropping
// duplicates. Calling it twice with the same ids is a no-op.
func MergeSeatIds(existing, added []string) []string {
	seen := make(map[string]bool, len(existing))
	merged := make([]string, 0, len(existing)+len(added))
	for _, id := range existing {
		if !seen[id] {
			seen[id] = true
			merged = append(merged, id)
		}
	}
	for _, id := range added {
		if !seen[id] {
			seen[id] = true
			merged = append(merged, id)
		}
	}
	return merged
}

// TakenSeatsFor reads the durable index entry for (date,time).
// Read errors only log, the projection then falls back to the baseline.
func TakenSeatsFor(date, timeSlot string) []string {
	if database.DB == nil {
		return nil
	}
	var entry model.TakenSeats
	err := database.DB.
		Where("show_date = ? AND show_time = ?", date, timeSlot).
		First(&entry).Error
	if err != nil {
		return nil
	}
	return entry.Seats
}

// IsSeatBooked answers the state machine's booked check for one seat
func IsSeatBooked(date, timeSlot, seatID string) bool {
	if BookingCfg == nil {
		log.Println("IsSeatBooked called before booking config load")
		return false
	}
	booked := BookedSet(BookingCfg, TakenSeatsFor(date, timeSlot), date, timeSlot)
	return booked[seatID]
}

// SeatMapFor builds the full render model for a (date,time) pair and the
// current selection
func SeatMapFor(date, timeSlot string, selected []string) map[string][]SeatUI {
	if BookingCfg == nil {
		return map[string][]SeatUI{}
	}
	booked := BookedSet(BookingCfg, TakenSeatsFor(date, timeSlot), date, timeSlot)
	return BuildSeatMap(BookingCfg, booked, selected)
}

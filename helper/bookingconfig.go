package helper

import (
	"encoding/json"
	"log"
	"os"

	"nizami_cinema/config"
	"nizami_cinema/model"
)

// BookingCfg is loaded once at startup and never mutated afterwards
var BookingCfg *model.BookingConfig

// LoadBookingConfig reads booking-config.json. A load failure is logged
// and the built-in defaults are used, the booking page renders either way.
func LoadBookingConfig() {
	path := config.ConfigOr("BOOKING_CONFIG_PATH", "data/booking-config.json")

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Booking config load error: %v", err)
		BookingCfg = DefaultBookingConfig()
		return
	}

	var cfg model.BookingConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		log.Printf("Booking config parse error: %v", err)
		BookingCfg = DefaultBookingConfig()
		return
	}

	if cfg.BookedSeats == nil {
		cfg.BookedSeats = map[string]map[string][]string{}
	}
	BookingCfg = &cfg
	log.Printf("Booking config loaded: %d rows x %d seats, %d dates, %d times",
		len(cfg.Theater.Rows), cfg.Theater.SeatsPerRow,
		len(cfg.Schedule.Dates), len(cfg.Schedule.Times))
}

func DefaultBookingConfig() *model.BookingConfig {
	return &model.BookingConfig{
		Theater: model.Theater{
			TicketPrice: 15,
			Rows:        []string{"A", "B", "C", "D", "E", "F"},
			SeatsPerRow: 8,
		},
		Schedule: model.Schedule{
			Dates: []model.ScheduleDate{},
			Times: []string{},
		},
		BookedSeats: map[string]map[string][]string{},
	}
}

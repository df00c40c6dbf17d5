package handler

import (
	"log"

	"nizami_cinema/config"
	"nizami_cinema/helper"
	"nizami_cinema/session"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client

	// Sessions owns the per-visitor seat-selection state machines
	Sessions *session.Manager
)

func InitRedis() {
	addr := config.ConfigOr("REDIS_ADDR", "localhost:6379")
	redisClient = redis.NewClient(&redis.Options{Addr: addr})
	log.Printf("Redis client ready (%s)", addr)
}

func InitSessions() {
	Sessions = session.NewManager(
		clockwork.NewRealClock(),
		helper.IsSeatBooked,
		func(seatID string) bool {
			return helper.BookingCfg != nil && helper.BookingCfg.HasSeat(seatID)
		},
		func() (string, string) {
			if helper.BookingCfg == nil {
				return "", ""
			}
			return helper.BookingCfg.FirstDate(), helper.BookingCfg.FirstTime()
		},
	)
}

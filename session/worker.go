package session

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const maxSessionIdle = 2 * time.Hour

var sweeper *cron.Cron

// StartSweeper prunes long-idle sessions every 10 minutes. Hold expiry
// itself is timer-driven per session, the sweep only reclaims memory.
func StartSweeper(m *Manager) {
	sweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := sweeper.AddFunc("*/10 * * * *", func() {
		if n := m.Sweep(maxSessionIdle); n > 0 {
			log.Printf("Session sweep removed %d idle sessions", n)
		}
	})
	if err != nil {
		log.Printf("Session sweeper init error: %v", err)
		return
	}

	sweeper.Start()
	log.Println("Session sweeper started (every 10 minutes)")
}

func StopSweeper() {
	if sweeper != nil {
		sweeper.Stop()
		log.Println("Session sweeper stopped")
	}
}

package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"nizami_cinema/helper"

	"github.com/gofiber/contrib/websocket"
)

func seatChannel(date, timeSlot string) string {
	return fmt.Sprintf("seats:%s:%s", date, timeSlot)
}

// SeatWebsocket streams seat-map updates for one (date,time) slot.
// Every connection holds its own subscription to the slot's redis
// channel, so each broadcast reaches each watcher exactly once and
// every process serving the slot sees the same state.
func SeatWebsocket(c *websocket.Conn) {
	date := c.Params("date")
	timeSlot := c.Params("time")
	defer c.Close()

	// current state right away for the new watcher
	if payload, err := json.Marshal(helper.SeatMapFor(date, timeSlot, nil)); err == nil {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}

	pubsub := redisClient.Subscribe(context.Background(), seatChannel(date, timeSlot))
	defer pubsub.Close()

	messages := pubsub.Channel()
	done := make(chan struct{})

	// the read loop only notices disconnects
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// BroadcastSeatMap publishes the recomputed seat map for a slot after a
// successful booking, so open seat grids refresh without a reload.
func BroadcastSeatMap(date, timeSlot string) {
	payload, err := json.Marshal(helper.SeatMapFor(date, timeSlot, nil))
	if err != nil {
		log.Printf("seat map marshal error: %v", err)
		return
	}

	if err := redisClient.Publish(context.Background(), seatChannel(date, timeSlot), payload).Err(); err != nil {
		log.Printf("seat map broadcast error: %v", err)
	}
}

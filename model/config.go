package model

import (
	"strconv"
	"strings"
)

// Theater layout from booking-config.json
type Theater struct {
	TicketPrice float64  `json:"ticketPrice"`
	Rows        []string `json:"rows"`
	SeatsPerRow int      `json:"seatsPerRow"`
}

type ScheduleDate struct {
	Day  string `json:"day"`  // pill label, e.g. "Mon 12"
	Date string `json:"date"` // key, e.g. "2025-05-12"
}

type Schedule struct {
	Dates []ScheduleDate `json:"dates"`
	Times []string       `json:"times"`
}

// BookingConfig is loaded once per process and read-only afterwards.
// BookedSeats is the static baseline; seats taken by live bookings are
// kept in the taken_seats table and merged at projection time.
type BookingConfig struct {
	Theater     Theater                        `json:"theater"`
	Schedule    Schedule                       `json:"schedule"`
	BookedSeats map[string]map[string][]string `json:"bookedSeats"`
}

// FirstDate returns the default date key, empty when no schedule loaded
func (c *BookingConfig) FirstDate() string {
	if len(c.Schedule.Dates) == 0 {
		return ""
	}
	return c.Schedule.Dates[0].Date
}

func (c *BookingConfig) FirstTime() string {
	if len(c.Schedule.Times) == 0 {
		return ""
	}
	return c.Schedule.Times[0]
}

func (c *BookingConfig) HasDate(date string) bool {
	for _, d := range c.Schedule.Dates {
		if d.Date == date {
			return true
		}
	}
	return false
}

func (c *BookingConfig) HasTime(t string) bool {
	for _, s := range c.Schedule.Times {
		if s == t {
			return true
		}
	}
	return false
}

// HasSeat reports whether a seat id names a seat on the theater grid
// (a configured row followed by a number in 1..seatsPerRow). Only
// rendered seats are toggleable, anything else is rejected outright.
func (c *BookingConfig) HasSeat(id string) bool {
	for _, row := range c.Theater.Rows {
		if !strings.HasPrefix(id, row) {
			continue
		}
		n, err := strconv.Atoi(id[len(row):])
		if err == nil && n >= 1 && n <= c.Theater.SeatsPerRow {
			return true
		}
	}
	return false
}

// BaselineBooked returns the configured booked seats for a (date,time) pair
func (c *BookingConfig) BaselineBooked(date, timeSlot string) []string {
	byTime, ok := c.BookedSeats[date]
	if !ok {
		return nil
	}
	return byTime[timeSlot]
}

package constants

import "time"

// Booking policy
const (
	MaxSeatsPerBooking = 6
	HoldDuration       = 615 * time.Second // 10:15, same as the seat panel countdown
	PromoCode          = "NIZAMI10"
	PromoDiscount      = 0.10
)

// Payment methods
const (
	PaymentCard = "card"
	PaymentCash = "cash"
)

// Movie catalog sections
const (
	SectionSlider   = "slider"
	SectionContinue = "continue"
)

// Fallback when the booking page receives no usable movie handoff
const (
	DefaultMovieTitle = "Spirited Away"
	DefaultMovieImage = "img/spirited-away.jpg"
)

const (
	SliderInterval  = 4 * time.Second
	SessionCookie   = "nizami_session"
	SelectedMovieNS = "selected_movie:"
	CarryOverTTL    = 30 * time.Minute
	TicketFilePat   = "NIZAMI_Ticket_%s.txt"
)

// User-facing messages
const (
	MSG_SEAT_LIMIT        = "Maximum 6 seats allowed"
	MSG_SEAT_BOOKED       = "This seat is already booked"
	MSG_UNKNOWN_SEAT      = "Unknown seat"
	MSG_HOLD_EXPIRED      = "Time expired! Please select seats again."
	MSG_NO_SEATS          = "Please select at least one seat"
	MSG_PROMO_REQUIRED    = "Please enter a promo code"
	MSG_PROMO_INVALID     = "Invalid promo code"
	MSG_PROMO_APPLIED     = "Promo code applied: 10% off"
	MSG_INVALID_INPUT     = "Invalid input"
	MSG_BOOKING_NOT_FOUND = "Booking not found"
)

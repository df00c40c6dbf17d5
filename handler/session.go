package handler

import (
	"errors"

	"nizami_cinema/helper"
	"nizami_cinema/middleware"
	"nizami_cinema/model"
	"nizami_cinema/session"
	"nizami_cinema/utils"

	"github.com/gofiber/fiber/v2"
)

// sessionState is the render model every mutation hands back: the page
// re-renders purely from this, nothing else carries selection state.
func sessionState(c *fiber.Ctx, sess *session.Session) error {
	snap := sess.Snapshot()
	price := helper.BookingCfg.Theater.TicketPrice

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"session":         snap,
		"seatMap":         helper.SeatMapFor(snap.Date, snap.Time, snap.Seats),
		"totalPrice":      float64(len(snap.Seats)) * price,
		"checkoutEnabled": len(snap.Seats) > 0,
	})
}

func GetSessionState(c *fiber.Ctx) error {
	sess := Sessions.Get(middleware.SessionID(c))
	return sessionState(c, sess)
}

// SelectDate replaces the date; any in-progress selection is discarded
// without confirmation and every seat status is recomputed.
func SelectDate(c *fiber.Ctx) error {
	input := c.Locals("selectDate").(model.SelectDateInput)

	if !helper.BookingCfg.HasDate(input.Date) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown schedule date", nil)
	}

	sess := Sessions.Get(middleware.SessionID(c))
	sess.SelectDate(input.Date)
	return sessionState(c, sess)
}

func SelectTime(c *fiber.Ctx) error {
	input := c.Locals("selectTime").(model.SelectTimeInput)

	if !helper.BookingCfg.HasTime(input.Time) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown schedule time", nil)
	}

	sess := Sessions.Get(middleware.SessionID(c))
	sess.SelectTime(input.Time)
	return sessionState(c, sess)
}

// ToggleSeat flips one seat. Booked seats and the 7th seat are rejected
// with a user-facing warning and no state change.
func ToggleSeat(c *fiber.Ctx) error {
	input := c.Locals("toggleSeat").(model.ToggleSeatInput)

	sess := Sessions.Get(middleware.SessionID(c))
	if err := sess.ToggleSeat(input.SeatID); err != nil {
		switch {
		case errors.Is(err, session.ErrUnknownSeat):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, session.ErrSeatBooked):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, session.ErrSeatLimit):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Seat toggle failed", err)
		}
	}
	return sessionState(c, sess)
}

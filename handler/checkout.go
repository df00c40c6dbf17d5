package handler

import (
	"encoding/base64"
	"errors"
	"log"

	"nizami_cinema/constants"
	"nizami_cinema/database"
	"nizami_cinema/helper"
	"nizami_cinema/middleware"
	"nizami_cinema/model"
	"nizami_cinema/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplyPromo adjusts the displayed total only. The persisted booking
// total is always the undiscounted |seats| x ticketPrice.
func ApplyPromo(c *fiber.Ctx) error {
	var input model.PromoInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MSG_INVALID_INPUT, err)
	}

	sess := Sessions.Get(middleware.SessionID(c))
	total := sess.Total(helper.BookingCfg.Theater.TicketPrice)

	discounted, err := helper.ApplyPromoCode(total, input.Code)
	switch {
	case errors.Is(err, helper.ErrPromoRequired):
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MSG_PROMO_REQUIRED, err, "code")
	case errors.Is(err, helper.ErrPromoInvalid):
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MSG_PROMO_INVALID, err, "code")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"total":           total,
		"discountedTotal": discounted,
		"message":         constants.MSG_PROMO_APPLIED,
	})
}

var errSeatConflict = errors.New("seat was just booked by someone else")

// persistBooking appends the booking row and unions its seats into the
// slot's taken-seats entry under a row lock, failing with
// errSeatConflict when any seat was taken since selection. Runs inside
// a transaction so the append and the index merge land atomically.
func persistBooking(tx *gorm.DB, booking *model.Booking) error {
	var entry model.TakenSeats
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("show_date = ? AND show_time = ?", booking.ShowDate, booking.ShowTime).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = model.TakenSeats{ShowDate: booking.ShowDate, ShowTime: booking.ShowTime, Seats: model.StringList{}}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if helper.SeatConflict(entry.Seats, booking.Seats) {
		return errSeatConflict
	}

	merged := helper.MergeSeatIds(entry.Seats, booking.Seats)
	if err := tx.Model(&entry).Update("seats", model.StringList(merged)).Error; err != nil {
		return err
	}

	return tx.Create(booking).Error
}

// CreateBooking turns a validated order form plus the session's
// selection into one appended booking row and a unioned taken-seats
// entry, atomically. On success the session resets and the seat map is
// broadcast to live watchers of the slot.
func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("bookingInput").(model.CreateBookingInput)

	sess := Sessions.Get(middleware.SessionID(c))
	if err := sess.BeginCheckout(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MSG_NO_SEATS, nil)
	}

	date, timeSlot := sess.DateTime()
	seats := sess.Seats()
	total := sess.Total(helper.BookingCfg.Theater.TicketPrice)

	booking := model.Booking{
		BookingID:  utils.GenerateBookingID(),
		MovieTitle: resolveMovie(c).Title,
		ShowDate:   date,
		ShowTime:   timeSlot,
		Seats:      model.StringList(seats),
		TotalPrice: total,
	}
	copier.Copy(&booking, &input)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return persistBooking(tx, &booking)
	})

	if errors.Is(err, errSeatConflict) {
		sess.AbortCheckout()
		return utils.ErrorResponse(c, fiber.StatusConflict, "One of your seats was just booked, please pick again", err)
	}
	if err != nil {
		sess.AbortCheckout()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Booking failed", err)
	}

	sess.Complete()
	BroadcastSeatMap(date, timeSlot)
	utils.SendBookingConfirmationEmail(booking)

	qrBase64 := ""
	if qrBytes, err := utils.GenerateQRCode(booking.BookingID, 400); err != nil {
		log.Printf("QR generation error for booking %s: %v", booking.BookingID, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking":     booking,
		"ticketCount": len(booking.Seats),
		"downloadUrl": "/api/v1/tickets/" + booking.BookingID + "/download",
		"qrCode":      qrBase64,
	})
}

// GetBookings lists the append-only booking store, newest first
func GetBookings(c *fiber.Ctx) error {
	var bookings []model.Booking
	if err := database.DB.Order("created_at desc").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load bookings", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

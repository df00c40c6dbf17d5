package handler

import (
	"encoding/base64"
	"fmt"
	"log"

	"nizami_cinema/constants"
	"nizami_cinema/database"
	"nizami_cinema/model"
	"nizami_cinema/utils"

	"github.com/gofiber/fiber/v2"
)

func GetTicket(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking model.Booking
	if err := database.DB.Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MSG_BOOKING_NOT_FOUND, err)
	}

	qrBase64 := ""
	if qrBytes, err := utils.GenerateQRCode(booking.BookingID, 400); err != nil {
		log.Printf("QR generation error for booking %s: %v", booking.BookingID, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking":     booking,
		"displayDate": utils.FormatDisplayDate(booking.ShowDate),
		"qrCode":      qrBase64,
	})
}

// DownloadTicket offers the plain-text ticket as a file
func DownloadTicket(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking model.Booking
	if err := database.DB.Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MSG_BOOKING_NOT_FOUND, err)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, utils.TicketFileName(booking.BookingID)))
	return c.SendString(utils.RenderTicket(booking))
}

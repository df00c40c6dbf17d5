package utils

import (
	"io"
	"log"
	"strconv"

	"nizami_cinema/config"
	"nizami_cinema/model"

	"gopkg.in/gomail.v2"
)

// SendBookingConfirmationEmail mails the ticket text with the booking QR
// embedded. Async so the checkout response never waits on SMTP; failures
// only log.
func SendBookingConfirmationEmail(booking model.Booking) {
	go func() {
		host := config.Config("SMTP_HOST")
		if host == "" {
			log.Println("SMTP not configured, skipping confirmation email")
			return
		}
		port, _ := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.ConfigOr("SMTP_FROM", "NIZAMI Cinema <tickets@nizami.cinema>")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", booking.Email)
		m.SetHeader("Subject", "Your NIZAMI Cinema ticket - "+booking.BookingID)
		m.SetBody("text/plain", RenderTicket(booking))

		qrBytes, err := GenerateQRCode(booking.BookingID, 400)
		if err != nil {
			log.Printf("QR generation error for booking %s: %v", booking.BookingID, err)
		} else {
			m.Embed("qr_booking.png",
				gomail.SetCopyFunc(func(w io.Writer) error {
					_, err := w.Write(qrBytes)
					return err
				}),
				gomail.SetHeader(map[string][]string{
					"Content-Type":        {"image/png"},
					"Content-ID":          {"<qr_booking_code>"},
					"Content-Disposition": {"inline"},
				}),
			)
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Confirmation email error for %s: %v", booking.Email, err)
		} else {
			log.Printf("Confirmation email sent to %s (booking %s)", booking.Email, booking.BookingID)
		}
	}()
}

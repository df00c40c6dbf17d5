package utils

import (
	"fmt"
	"strings"

	"nizami_cinema/constants"
	"nizami_cinema/model"
)

const ticketRule = "========================================"
const ticketSep = "----------------------------------------"

// RenderTicket produces the downloadable plain-text ticket document
func RenderTicket(b model.Booking) string {
	var sb strings.Builder

	sb.WriteString(ticketRule + "\n")
	sb.WriteString("         NIZAMI CINEMA E-TICKET\n")
	sb.WriteString(ticketRule + "\n")
	fmt.Fprintf(&sb, "Booking ID:  %s\n", b.BookingID)
	fmt.Fprintf(&sb, "Movie:       %s\n", b.MovieTitle)
	fmt.Fprintf(&sb, "Date:        %s\n", FormatDisplayDate(b.ShowDate))
	fmt.Fprintf(&sb, "Time:        %s\n", b.ShowTime)
	fmt.Fprintf(&sb, "Seats:       %s\n", strings.Join(b.Seats, ", "))
	fmt.Fprintf(&sb, "Total:       $%s\n", FormatPrice(b.TotalPrice))
	sb.WriteString(ticketSep + "\n")
	fmt.Fprintf(&sb, "Name:        %s\n", b.FullName)
	fmt.Fprintf(&sb, "Email:       %s\n", b.Email)
	fmt.Fprintf(&sb, "Phone:       %s\n", b.Phone)
	fmt.Fprintf(&sb, "Payment:     %s\n", strings.ToUpper(b.PaymentMethod))
	fmt.Fprintf(&sb, "Booked At:   %s\n", FormatTimestamp(b.CreatedAt))
	sb.WriteString(ticketRule + "\n")
	sb.WriteString("   Thank you for choosing NIZAMI Cinema!\n")
	sb.WriteString(ticketRule + "\n")

	return sb.String()
}

// TicketFileName is the attachment name offered for download
func TicketFileName(bookingID string) string {
	return fmt.Sprintf(constants.TicketFilePat, bookingID)
}

package model

// Booking is one confirmed checkout. Rows are append-only: nothing in
// this system updates or deletes them after creation.
type Booking struct {
	DTO
	BookingID     string     `gorm:"uniqueIndex;size:30" json:"bookingId"`
	MovieTitle    string     `json:"movieTitle"`
	ShowDate      string     `gorm:"size:20" json:"date"`
	ShowTime      string     `gorm:"size:10" json:"time"`
	Seats         StringList `gorm:"type:text" json:"seats"`
	FullName      string     `json:"fullName"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	PaymentMethod string     `gorm:"size:10" json:"paymentMethod"` // card | cash
	TotalPrice    float64    `json:"totalPrice"`
}

// TakenSeats is the durable taken-seats index: one row per (date,time),
// seats unioned in on every successful booking for that slot.
type TakenSeats struct {
	DTO
	ShowDate string     `gorm:"size:20;uniqueIndex:idx_show_slot" json:"date"`
	ShowTime string     `gorm:"size:10;uniqueIndex:idx_show_slot" json:"time"`
	Seats    StringList `gorm:"type:text" json:"seats"`
}

type CreateBookingInput struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=card cash"`
	CardNumber    string `json:"cardNumber"`
	ExpiryDate    string `json:"expiryDate"`
	CVV           string `json:"cvv"`
	CardName      string `json:"cardName"`
}

type PromoInput struct {
	Code string `json:"code"`
}

type SelectDateInput struct {
	Date string `json:"date" validate:"required"`
}

type SelectTimeInput struct {
	Time string `json:"time" validate:"required"`
}

type ToggleSeatInput struct {
	SeatID string `json:"seatId" validate:"required"`
}

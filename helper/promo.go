package helper

import (
	"errors"
	"math"
	"strings"

	"nizami_cinema/constants"
)

var (
	ErrPromoRequired = errors.New("promo code required")
	ErrPromoInvalid  = errors.New("promo code invalid")
)

// ApplyPromoCode applies the single supported code (case-insensitive)
// to the current total and returns the discounted amount rounded to the
// nearest integer. The discount is display-only: the persisted booking
// total stays |seats| x ticketPrice.
func ApplyPromoCode(total float64, code string) (float64, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return total, ErrPromoRequired
	}
	if !strings.EqualFold(trimmed, constants.PromoCode) {
		return total, ErrPromoInvalid
	}
	return math.Round(total * (1 - constants.PromoDiscount)), nil
}

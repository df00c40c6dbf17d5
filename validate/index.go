package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex  = regexp.MustCompile(`^\d{7}$`)
	digitsRegex = regexp.MustCompile(`^\d+$`)
	expiryRegex = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	cvvRegex    = regexp.MustCompile(`^\d{3}$`)
)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Phone numbers are local 7-digit numbers, nothing else is accepted
func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

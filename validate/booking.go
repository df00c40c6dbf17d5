package validate

import (
	"fmt"
	"strconv"
	"strings"

	"nizami_cinema/constants"
	"nizami_cinema/model"

	"github.com/gofiber/fiber/v2"
)

// ValidateBookingForm evaluates every rule independently and returns the
// full field→message map; nothing short-circuits, a form with four bad
// fields reports all four at once. Card rules are skipped entirely for
// cash payments.
func ValidateBookingForm(input model.CreateBookingInput) map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(input.FullName)
	if name == "" {
		errs["fullName"] = "Full name is required"
	} else if len(name) < 3 {
		errs["fullName"] = "Full name must be at least 3 characters"
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !isValidEmail(email) {
		errs["email"] = "Email is not valid"
	}

	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		errs["phone"] = "Phone number is required"
	} else if !isValidPhone(phone) {
		errs["phone"] = "Phone number must be exactly 7 digits"
	}

	if input.PaymentMethod == constants.PaymentCash {
		return errs
	}

	card := strings.ReplaceAll(input.CardNumber, " ", "")
	if card == "" {
		errs["cardNumber"] = "Card number is required"
	} else if len(card) != 16 || !digitsRegex.MatchString(card) {
		errs["cardNumber"] = "Card number must be 16 digits"
	}

	expiry := strings.TrimSpace(input.ExpiryDate)
	if expiry == "" {
		errs["expiryDate"] = "Expiry date is required"
	} else if !isValidExpiry(expiry) {
		errs["expiryDate"] = "Expiry date must be MM/YY"
	}

	cvv := strings.TrimSpace(input.CVV)
	if cvv == "" {
		errs["cvv"] = "CVV is required"
	} else if !cvvRegex.MatchString(cvv) {
		errs["cvv"] = "CVV must be 3 digits"
	}

	cardName := strings.TrimSpace(input.CardName)
	if cardName == "" {
		errs["cardName"] = "Name on card is required"
	} else if len(cardName) < 3 {
		errs["cardName"] = "Name on card must be at least 3 characters"
	}

	return errs
}

func isValidExpiry(expiry string) bool {
	m := expiryRegex.FindStringSubmatch(expiry)
	if m == nil {
		return false
	}
	month, err := strconv.Atoi(m[1])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	return true
}

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		// payment method gate first, field rules depend on it
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if errs := ValidateBookingForm(input); len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  errs,
			})
		}

		c.Locals("bookingInput", input)
		return c.Next()
	}
}

func SelectDate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SelectDateInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		c.Locals("selectDate", input)
		return c.Next()
	}
}

func SelectTime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SelectTimeInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		c.Locals("selectTime", input)
		return c.Next()
	}
}

func ToggleSeat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ToggleSeatInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		c.Locals("toggleSeat", input)
		return c.Next()
	}
}

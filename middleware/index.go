package middleware

import (
	"nizami_cinema/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Session issues the anonymous visitor cookie on first touch and parks
// the id on Locals. No accounts, no tokens: the id only keys the
// seat-selection session and the catalog carry-over.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(constants.SessionCookie)
		if sid == "" {
			sid = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     constants.SessionCookie,
				Value:    sid,
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}
		c.Locals("sessionId", sid)
		return c.Next()
	}
}

// SessionID reads the visitor id parked by Session
func SessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals("sessionId").(string)
	return sid
}

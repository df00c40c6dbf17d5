package handler

import (
	"encoding/json"

	"nizami_cinema/constants"
	"nizami_cinema/database"
	"nizami_cinema/helper"
	"nizami_cinema/middleware"
	"nizami_cinema/model"
	"nizami_cinema/utils"

	"github.com/gofiber/fiber/v2"
)

// GetBookingPage is the booking page load. The movie comes from the
// `movie` query param, falling back to the session carry-over, falling
// back to the hardcoded default. The rest is everything the page needs
// in one shot: schedule, theater layout and the current session state.
func GetBookingPage(c *fiber.Ctx) error {
	sid := middleware.SessionID(c)
	movie := resolveMovie(c)

	sess := Sessions.Get(sid)
	snap := sess.Snapshot()
	cfg := helper.BookingCfg

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"movie":       movie,
		"ticketPrice": cfg.Theater.TicketPrice,
		"schedule":    cfg.Schedule,
		"session":     snap,
		"seatMap":     helper.SeatMapFor(snap.Date, snap.Time, snap.Seats),
		"maxSeats":    constants.MaxSeatsPerBooking,
	})
}

// resolveMovie: query param → carry-over → default movie. A title that
// matches nothing in the catalog still renders (the handoff key is just
// a title, it carries no id to verify against).
func resolveMovie(c *fiber.Ctx) model.SelectedMovie {
	// fasthttp hands the query param already URL-decoded
	if title := c.Query("movie"); title != "" {
		var movie model.Movie
		if err := database.DB.Where("title = ?", title).First(&movie).Error; err == nil {
			return model.SelectedMovie{Title: movie.Title, Image: movie.Image}
		}
		return model.SelectedMovie{Title: title, Image: constants.DefaultMovieImage}
	}

	sid := middleware.SessionID(c)
	if raw, err := redisClient.Get(c.Context(), constants.SelectedMovieNS+sid).Result(); err == nil {
		var selected model.SelectedMovie
		if err := json.Unmarshal([]byte(raw), &selected); err == nil && selected.Title != "" {
			return selected
		}
	}

	return model.SelectedMovie{
		Title: constants.DefaultMovieTitle,
		Image: constants.DefaultMovieImage,
	}
}

package router

import (
	"nizami_cinema/handler"
	"nizami_cinema/middleware"
	"nizami_cinema/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", middleware.Session())

	movies := v1.Group("/movies", logger.New())
	movies.Get("/", handler.GetMovies)
	movies.Get("/slider", handler.GetSliderState)
	movies.Post("/slider/:index", handler.SetSlide)
	movies.Get("/:slug", handler.GetMovieBySlug)
	movies.Post("/:slug/book", handler.BookMovie)

	booking := v1.Group("/booking", logger.New())
	booking.Get("/", handler.GetBookingPage)
	booking.Get("/session", handler.GetSessionState)
	booking.Post("/session/date", validate.SelectDate(), handler.SelectDate)
	booking.Post("/session/time", validate.SelectTime(), handler.SelectTime)
	booking.Post("/session/seats/toggle", validate.ToggleSeat(), handler.ToggleSeat)
	booking.Post("/promo", handler.ApplyPromo)
	booking.Post("/checkout", validate.CreateBooking(), handler.CreateBooking)

	tickets := v1.Group("/tickets", logger.New())
	tickets.Get("/:bookingId", handler.GetTicket)
	tickets.Get("/:bookingId/download", handler.DownloadTicket)

	v1.Get("/bookings", handler.GetBookings)

	v1.Get("/ws/seats/:date/:time", websocket.New(handler.SeatWebsocket))
}

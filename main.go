package main

import (
	"log"

	"nizami_cinema/config"
	"nizami_cinema/database"
	"nizami_cinema/handler"
	"nizami_cinema/helper"
	"nizami_cinema/router"
	"nizami_cinema/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	helper.LoadBookingConfig()
	database.ConnectDB()

	handler.InitRedis()
	handler.InitSessions()

	helper.SetSliderLength(database.CountSliderMovies())
	helper.StartSliderScheduler()
	defer helper.StopSliderScheduler()

	session.StartSweeper(handler.Sessions)
	defer session.StopSweeper()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}

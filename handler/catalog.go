package handler

import (
	"encoding/json"
	"log"
	"net/url"
	"strconv"

	"nizami_cinema/constants"
	"nizami_cinema/database"
	"nizami_cinema/helper"
	"nizami_cinema/middleware"
	"nizami_cinema/model"
	"nizami_cinema/utils"

	"github.com/gofiber/fiber/v2"
)

type SlideUI struct {
	Index  int         `json:"index"`
	Movie  model.Movie `json:"movie"`
	Active bool        `json:"active"`
	Dimmed bool        `json:"dimmed"`
}

// GetMovies serves both home page sections
func GetMovies(c *fiber.Ctx) error {
	var slider, continueList []model.Movie

	if err := database.DB.
		Where("section = ?", constants.SectionSlider).
		Order("position asc").
		Find(&slider).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load movies", err)
	}
	if err := database.DB.
		Where("section = ?", constants.SectionContinue).
		Order("position asc").
		Find(&continueList).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load movies", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"sliderMovies":   slider,
		"continueMovies": continueList,
	})
}

// GetSliderState renders the promotional slider: exactly one active
// slide, every other one dimmed, background image = active slide's.
func GetSliderState(c *fiber.Ctx) error {
	var movies []model.Movie
	if err := database.DB.
		Where("section = ?", constants.SectionSlider).
		Order("position asc").
		Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load slider", err)
	}

	helper.SetSliderLength(len(movies))
	active := helper.SliderIndex()

	slides := make([]SlideUI, 0, len(movies))
	background := ""
	for i, m := range movies {
		isActive := i == active
		if isActive {
			background = m.Image
		}
		slides = append(slides, SlideUI{
			Index:  i,
			Movie:  m,
			Active: isActive,
			Dimmed: !isActive,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"slides":          slides,
		"activeIndex":     active,
		"backgroundImage": background,
	})
}

// SetSlide activates a slide directly (a click on it)
func SetSlide(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MSG_INVALID_INPUT, err)
	}
	if err := helper.SetSliderIndex(index); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Slide index out of range", err)
	}
	return GetSliderState(c)
}

func GetMovieBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var movie model.Movie
	if err := database.DB.Where("slug = ?", slugParam).First(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

// BookMovie is the Book Now handoff: the selected movie goes into the
// session carry-over and the client is pointed at the booking page with
// the title URL-encoded as the sole handoff key.
func BookMovie(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var movie model.Movie
	if err := database.DB.Where("slug = ?", slugParam).First(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
	}

	selected := model.SelectedMovie{Title: movie.Title, Image: movie.Image}
	payload, err := json.Marshal(selected)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store selection", err)
	}

	sid := middleware.SessionID(c)
	key := constants.SelectedMovieNS + sid
	if err := redisClient.Set(c.Context(), key, payload, constants.CarryOverTTL).Err(); err != nil {
		// carry-over is best effort, the query param still works
		log.Printf("carry-over store error for session %s: %v", sid, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingUrl": "/booking?movie=" + url.QueryEscape(movie.Title),
	})
}

package database

import (
	"encoding/json"
	"log"
	"os"

	"nizami_cinema/config"
	"nizami_cinema/constants"
	"nizami_cinema/model"

	"gorm.io/gorm"
)

// SeedData imports the movie catalog document into the movies table.
// A missing or broken document is logged and leaves the catalog empty;
// the rest of the app keeps working with whatever is already in the DB.
func SeedData(db *gorm.DB) {
	path := config.ConfigOr("MOVIE_DATA_PATH", "data/movies.json")

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Movie catalog load error: %v", err)
		return
	}

	var doc model.MovieDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("Movie catalog parse error: %v", err)
		return
	}

	seedSection(db, doc.SliderMovies, constants.SectionSlider)
	seedSection(db, doc.ContinueMovies, constants.SectionContinue)
}

func seedSection(db *gorm.DB, summaries []model.MovieSummary, section string) {
	for i, m := range summaries {
		movie := model.Movie{
			Title:     m.Title,
			Image:     m.Image,
			Rating:    m.Rating,
			Year:      m.Year,
			Genre:     m.Genre,
			Languages: m.Languages,
			AgeRating: m.AgeRating,
			DateLabel: m.DateLabel,
			Section:   section,
			Position:  i,
		}
		movie.Slug = generateUniqueMovieSlug(db, m.Title)

		if err := db.Where(model.Movie{Title: m.Title, Section: section}).
			FirstOrCreate(&movie).Error; err != nil {
			log.Println("failed to seed movie:", m.Title, "error:", err)
		}
	}
}

// CountSliderMovies reports the seeded slide count; the slider scheduler
// needs it to wrap the active index.
func CountSliderMovies() int {
	var count int64
	if err := DB.Model(&model.Movie{}).
		Where("section = ?", constants.SectionSlider).
		Count(&count).Error; err != nil {
		log.Printf("failed to count slider movies: %v", err)
		return 0
	}
	return int(count)
}

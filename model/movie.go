package model

// Movie is one catalog entry. Section is "slider" or "continue" and
// Position orders it within its section; DateLabel is the display label
// on the continue cards ("Available now").
type Movie struct {
	DTO
	Title     string     `gorm:"not null" json:"title"`
	Slug      string     `gorm:"uniqueIndex;size:120" json:"slug"`
	Image     string     `json:"image"`
	Rating    float64    `json:"rating"`
	Year      *int       `json:"year,omitempty"`
	Genre     *string    `json:"genre,omitempty"`
	Languages StringList `gorm:"type:text" json:"languages,omitempty"`
	AgeRating *string    `json:"ageRating,omitempty"`
	DateLabel *string    `json:"date,omitempty"`
	Section   string     `gorm:"index;size:20" json:"-"`
	Position  int        `json:"-"`
}

// MovieSummary is the document shape of movies.json entries
type MovieSummary struct {
	Title     string   `json:"title"`
	Image     string   `json:"image"`
	Rating    float64  `json:"rating"`
	Year      *int     `json:"year,omitempty"`
	Genre     *string  `json:"genre,omitempty"`
	Languages []string `json:"languages,omitempty"`
	AgeRating *string  `json:"ageRating,omitempty"`
	DateLabel *string  `json:"date,omitempty"`
}

type MovieDocument struct {
	SliderMovies   []MovieSummary `json:"sliderMovies"`
	ContinueMovies []MovieSummary `json:"continueMovies"`
}

// SelectedMovie is the catalog→booking carry-over payload
type SelectedMovie struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

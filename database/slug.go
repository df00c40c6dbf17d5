package database

import (
	"fmt"

	"nizami_cinema/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// generateUniqueMovieSlug slugifies a title and appends -1, -2, ... until
// the result is free. Titles are not unique identifiers in the catalog
// document, slugs are.
func generateUniqueMovieSlug(tx *gorm.DB, title string) string {
	base := slug.Make(title)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Movie{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

package movie

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the wire format for release dates.
const DateLayout = "2006-01-02"

// CreateMovieRequest is the input for both create and update; updates are a
// full field replace, not a merge.
type CreateMovieRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ReleaseDate *string `json:"release_date"`
	Genre       *string `json:"genre"`
	Director    *string `json:"director"`
}

// Validate checks fields one at a time so the first violation decides the
// error message.
func (r CreateMovieRequest) Validate() error {
	if err := validation.Validate(strings.TrimSpace(r.Title),
		validation.Required.Error("cannot be blank"),
		validation.Length(1, 255),
	); err != nil {
		return validation.Errors{"title": err}
	}
	if err := validation.Validate(r.Description, validation.Length(0, 1000)); err != nil {
		return validation.Errors{"description": err}
	}
	if err := validation.Validate(r.Genre, validation.Length(0, 100)); err != nil {
		return validation.Errors{"genre": err}
	}
	if err := validation.Validate(r.Director, validation.Length(0, 200)); err != nil {
		return validation.Errors{"director": err}
	}
	if err := validation.Validate(r.ReleaseDate, validation.Date(DateLayout)); err != nil {
		return validation.Errors{"release_date": err}
	}
	return nil
}

// MovieResponse is the client-facing representation. Reviews is never null;
// AverageRating is omitted entirely when there are no reviews.
type MovieResponse struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Description   *string         `json:"description"`
	ReleaseDate   *string         `json:"release_date"`
	Genre         *string         `json:"genre"`
	Director      *string         `json:"director"`
	Reviews       []ReviewSummary `json:"reviews"`
	AverageRating *float64        `json:"average_rating,omitempty"`
	ReviewCount   int             `json:"review_count"`
}

// ReviewSummary is the flattened review shape embedded in a movie. It carries
// the author's username only, never a back-reference to the movie.
type ReviewSummary struct {
	ID       int64   `json:"id"`
	Text     *string `json:"text"`
	Rating   int     `json:"rating"`
	Username *string `json:"user_name"`
}

package movie

import "time"

// Movie is the persisted catalog entity. Reviews is populated only by the
// with-reviews repository reads; a nil slice means the relationship was not
// requested, not that the movie has no reviews.
type Movie struct {
	ID          int64
	Title       string
	Description *string
	ReleaseDate *time.Time
	Genre       *string
	Director    *string
	Reviews     []ReviewEntry
}

// ReviewEntry is a review row resolved together with its author's username.
// Carrying the username instead of a user reference keeps the mapped
// representation one-directional.
type ReviewEntry struct {
	ID       int64
	Text     *string
	Rating   int
	Username *string
}

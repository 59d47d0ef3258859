package review

import "time"

// Review is the persisted review entity. The movie and user references are
// set at creation and never change afterwards.
type Review struct {
	ID        int64
	Text      *string
	Rating    int
	MovieID   int64
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

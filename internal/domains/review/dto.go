package review

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errRatingOutOfRange = errors.New("must be between 1 and 5")

// ValidateRating is the shared rating bound rule. It is applied to inbound
// input and re-applied defensively when persisted reviews are mapped back
// out, so both sides enforce the identical invariant.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errRatingOutOfRange
	}
	return nil
}

// CreateReviewRequest is the input for creating a review. The movie and user
// references are immutable after creation.
type CreateReviewRequest struct {
	Text    *string `json:"text"`
	Rating  int     `json:"rating"`
	MovieID int64   `json:"movie_id"`
	UserID  int64   `json:"user_id"`
}

// Validate checks fields one at a time so the first violation decides the
// error message: rating, then movie id, then user id, then text.
func (r CreateReviewRequest) Validate() error {
	if r.Rating == 0 {
		return validation.Errors{"rating": errors.New("is required")}
	}
	if err := ValidateRating(r.Rating); err != nil {
		return validation.Errors{"rating": err}
	}
	if err := validation.Validate(r.MovieID, validation.Required.Error("is required")); err != nil {
		return validation.Errors{"movie_id": err}
	}
	if err := validation.Validate(r.UserID, validation.Required.Error("is required")); err != nil {
		return validation.Errors{"user_id": err}
	}
	if err := validation.Validate(r.Text, validation.Length(0, 1000)); err != nil {
		return validation.Errors{"text": err}
	}
	return nil
}

// UpdateReviewRequest carries the only two mutable review fields.
type UpdateReviewRequest struct {
	Text   *string `json:"text"`
	Rating int     `json:"rating"`
}

func (r UpdateReviewRequest) Validate() error {
	if r.Rating == 0 {
		return validation.Errors{"rating": errors.New("is required")}
	}
	if err := ValidateRating(r.Rating); err != nil {
		return validation.Errors{"rating": err}
	}
	if err := validation.Validate(r.Text, validation.Length(0, 1000)); err != nil {
		return validation.Errors{"text": err}
	}
	return nil
}

type ReviewResponse struct {
	ID        int64     `json:"id"`
	Text      *string   `json:"text"`
	Rating    int       `json:"rating"`
	MovieID   int64     `json:"movie_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse maps a persisted review outward, re-checking the rating bound.
func ToResponse(r *Review) (*ReviewResponse, error) {
	if err := ValidateRating(r.Rating); err != nil {
		return nil, fmt.Errorf("review %d rating: %w", r.ID, err)
	}

	return &ReviewResponse{
		ID:        r.ID,
		Text:      r.Text,
		Rating:    r.Rating,
		MovieID:   r.MovieID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

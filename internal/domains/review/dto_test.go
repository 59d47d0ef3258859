package review

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fieldError(t *testing.T, err error, field string) {
	t.Helper()
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, field)
	assert.Len(t, errs, 1)
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, ValidateRating(rating))
	}
	assert.Error(t, ValidateRating(0))
	assert.Error(t, ValidateRating(6))
	assert.Error(t, ValidateRating(-1))
}

func TestCreateReviewRequestValidate(t *testing.T) {
	long := strings.Repeat("x", 1001)

	tests := []struct {
		name  string
		req   CreateReviewRequest
		field string
	}{
		{"missing rating", CreateReviewRequest{MovieID: 1, UserID: 1}, "rating"},
		{"rating too high", CreateReviewRequest{Rating: 6, MovieID: 1, UserID: 1}, "rating"},
		{"rating negative", CreateReviewRequest{Rating: -1, MovieID: 1, UserID: 1}, "rating"},
		{"missing movie", CreateReviewRequest{Rating: 4, UserID: 1}, "movie_id"},
		{"missing user", CreateReviewRequest{Rating: 4, MovieID: 1}, "user_id"},
		{"text too long", CreateReviewRequest{Rating: 4, MovieID: 1, UserID: 1, Text: &long}, "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldError(t, tt.req.Validate(), tt.field)
		})
	}

	assert.NoError(t, CreateReviewRequest{Rating: 4, MovieID: 1, UserID: 1}.Validate())
}

// Rating is checked before the references, so a request that is wrong on
// every field reports the rating first.
func TestCreateReviewRequestValidateOrder(t *testing.T) {
	fieldError(t, CreateReviewRequest{Rating: 9}.Validate(), "rating")
	fieldError(t, CreateReviewRequest{Rating: 4, UserID: 1}.Validate(), "movie_id")
}

func TestUpdateReviewRequestValidate(t *testing.T) {
	fieldError(t, UpdateReviewRequest{}.Validate(), "rating")
	fieldError(t, UpdateReviewRequest{Rating: 0, Text: strPtr("fine")}.Validate(), "rating")
	assert.NoError(t, UpdateReviewRequest{Rating: 5, Text: strPtr("great")}.Validate())
}

func TestToResponseRejectsCorruptRating(t *testing.T) {
	_, err := ToResponse(&Review{ID: 1, Rating: 0})
	assert.Error(t, err)
}

func TestToResponseCopiesFields(t *testing.T) {
	resp, err := ToResponse(&Review{
		ID:      9,
		Text:    strPtr("tense"),
		Rating:  5,
		MovieID: 2,
		UserID:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, int64(2), resp.MovieID)
	assert.Equal(t, int64(3), resp.UserID)
	assert.Equal(t, strPtr("tense"), resp.Text)
}

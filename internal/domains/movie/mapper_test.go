package movie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestToResponseNoReviews(t *testing.T) {
	resp, err := ToResponse(&Movie{ID: 1, Title: "Heat"})
	require.NoError(t, err)

	assert.NotNil(t, resp.Reviews)
	assert.Empty(t, resp.Reviews)
	assert.Nil(t, resp.AverageRating)
	assert.Equal(t, 0, resp.ReviewCount)
}

func TestToResponseComputesAverage(t *testing.T) {
	resp, err := ToResponse(&Movie{
		ID:    2,
		Title: "Alien",
		Reviews: []ReviewEntry{
			{ID: 10, Rating: 3, Username: strPtr("alice")},
			{ID: 11, Rating: 5, Text: strPtr("a classic")},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, resp.AverageRating)
	assert.InDelta(t, 4.0, *resp.AverageRating, 1e-9)
	assert.Equal(t, 2, resp.ReviewCount)
	require.Len(t, resp.Reviews, 2)
	assert.Equal(t, strPtr("alice"), resp.Reviews[0].Username)
	assert.Equal(t, strPtr("a classic"), resp.Reviews[1].Text)
}

func TestToResponseRejectsCorruptRating(t *testing.T) {
	_, err := ToResponse(&Movie{
		ID:      3,
		Title:   "Se7en",
		Reviews: []ReviewEntry{{ID: 20, Rating: 7}},
	})
	assert.Error(t, err)
}

func TestFromCreateRequestParsesDate(t *testing.T) {
	entity, err := FromCreateRequest(CreateMovieRequest{
		Title:       "Blade Runner",
		ReleaseDate: strPtr("1982-06-25"),
	})
	require.NoError(t, err)
	require.NotNil(t, entity.ReleaseDate)
	assert.Equal(t, time.Date(1982, 6, 25, 0, 0, 0, 0, time.UTC), *entity.ReleaseDate)
}

func TestFromCreateRequestNilDate(t *testing.T) {
	entity, err := FromCreateRequest(CreateMovieRequest{Title: "Blade Runner"})
	require.NoError(t, err)
	assert.Nil(t, entity.ReleaseDate)
}

func TestFormatDateRoundTrip(t *testing.T) {
	assert.Nil(t, FormatDate(nil))

	d := time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC)
	formatted := FormatDate(&d)
	require.NotNil(t, formatted)
	assert.Equal(t, "1999-03-31", *formatted)
}

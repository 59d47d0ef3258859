package movie

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldError(t *testing.T, err error, field string) {
	t.Helper()
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, field)
	assert.Len(t, errs, 1)
}

func TestCreateMovieRequestValidate(t *testing.T) {
	long := func(n int) *string {
		s := strings.Repeat("x", n)
		return &s
	}

	tests := []struct {
		name  string
		req   CreateMovieRequest
		field string
	}{
		{"blank title", CreateMovieRequest{Title: "  "}, "title"},
		{"title too long", CreateMovieRequest{Title: strings.Repeat("x", 256)}, "title"},
		{"description too long", CreateMovieRequest{Title: "ok", Description: long(1001)}, "description"},
		{"genre too long", CreateMovieRequest{Title: "ok", Genre: long(101)}, "genre"},
		{"director too long", CreateMovieRequest{Title: "ok", Director: long(201)}, "director"},
		{"bad date", CreateMovieRequest{Title: "ok", ReleaseDate: strPtr("31-12-1999")}, "release_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			fieldError(t, err, tt.field)
		})
	}
}

// The first failing field wins even when several fields are invalid.
func TestCreateMovieRequestValidateOrder(t *testing.T) {
	bad := strings.Repeat("x", 2000)
	err := CreateMovieRequest{
		Title:       "",
		Description: &bad,
		ReleaseDate: strPtr("not-a-date"),
	}.Validate()
	fieldError(t, err, "title")
}

func TestCreateMovieRequestValidateAccepts(t *testing.T) {
	err := CreateMovieRequest{
		Title:       "The Thing",
		Description: strPtr("Antarctic research station horror"),
		ReleaseDate: strPtr("1982-06-25"),
		Genre:       strPtr("Horror"),
		Director:    strPtr("John Carpenter"),
	}.Validate()
	assert.NoError(t, err)

	assert.NoError(t, CreateMovieRequest{Title: "Minimal"}.Validate())
}

package movie

import (
	"fmt"
	"time"

	"github.com/tony-ross/netflix-catalog/internal/domains/review"
)

// ToResponse maps a persisted movie to its client-facing representation and
// computes the derived rating fields. Ratings are re-validated on the way
// out; an out-of-range value in the store is a data fault and surfaces as an
// error instead of reaching clients.
func ToResponse(m *Movie) (*MovieResponse, error) {
	summaries := make([]ReviewSummary, 0, len(m.Reviews))
	for _, entry := range m.Reviews {
		if err := review.ValidateRating(entry.Rating); err != nil {
			return nil, fmt.Errorf("review %d: %w", entry.ID, err)
		}
		summaries = append(summaries, ReviewSummary{
			ID:       entry.ID,
			Text:     entry.Text,
			Rating:   entry.Rating,
			Username: entry.Username,
		})
	}

	resp := &MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ReleaseDate: FormatDate(m.ReleaseDate),
		Genre:       m.Genre,
		Director:    m.Director,
		Reviews:     summaries,
		ReviewCount: len(summaries),
	}

	if len(summaries) > 0 {
		sum := 0
		for _, s := range summaries {
			sum += s.Rating
		}
		avg := float64(sum) / float64(len(summaries))
		resp.AverageRating = &avg
	}

	return resp, nil
}

// FromCreateRequest builds an entity skeleton from validated input. The id
// and the review collection are assigned by the store.
func FromCreateRequest(req CreateMovieRequest) (*Movie, error) {
	releaseDate, err := ParseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	return &Movie{
		Title:       req.Title,
		Description: req.Description,
		ReleaseDate: releaseDate,
		Genre:       req.Genre,
		Director:    req.Director,
	}, nil
}

func ParseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(DateLayout, *value)
	if err != nil {
		return nil, fmt.Errorf("invalid release date %q: %w", *value, err)
	}
	return &parsed, nil
}

func FormatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(DateLayout)
	return &formatted
}

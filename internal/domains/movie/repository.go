package movie

import "context"

// Repository is the movie store contract. Reads come in two shapes: plain
// reads used for existence checks and full-replace updates, and with-reviews
// reads that resolve the review relationship so the mapping layer can compute
// derived fields. The Find* searches resolve reviews as well, since their
// results feed the same mapping.
type Repository interface {
	Create(ctx context.Context, m *Movie) (int64, error)
	GetByID(ctx context.Context, id int64) (*Movie, error)
	GetByIDWithReviews(ctx context.Context, id int64) (*Movie, error)
	ListAllWithReviews(ctx context.Context) ([]*Movie, error)
	FindByTitle(ctx context.Context, title string) ([]*Movie, error)
	FindByGenre(ctx context.Context, genre string) ([]*Movie, error)
	FindByDirector(ctx context.Context, director string) ([]*Movie, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, m *Movie) error
	Delete(ctx context.Context, id int64) error
}

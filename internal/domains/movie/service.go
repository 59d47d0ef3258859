package movie

import "context"

// Service orchestrates validation, store access and mapping for movies.
// Search precedence across the three finders belongs to the API surfaces.
type Service interface {
	ListAll(ctx context.Context) ([]*MovieResponse, error)
	GetByID(ctx context.Context, id int64) (*MovieResponse, error)
	Create(ctx context.Context, req CreateMovieRequest) (*MovieResponse, error)
	Update(ctx context.Context, id int64, req CreateMovieRequest) (*MovieResponse, error)
	Delete(ctx context.Context, id int64) error
	FindByTitle(ctx context.Context, title string) ([]*MovieResponse, error)
	FindByGenre(ctx context.Context, genre string) ([]*MovieResponse, error)
	FindByDirector(ctx context.Context, director string) ([]*MovieResponse, error)
}

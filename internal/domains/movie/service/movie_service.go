package service

import (
	"context"
	"fmt"

	"github.com/tony-ross/netflix-catalog/internal/domains/movie"
)

type movieService struct {
	repo movie.Repository
}

func NewMovieService(repo movie.Repository) movie.Service {
	return &movieService{repo: repo}
}

func (s *movieService) ListAll(ctx context.Context) ([]*movie.MovieResponse, error) {
	movies, err := s.repo.ListAllWithReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return mapMovies(movies)
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*movie.MovieResponse, error) {
	m, err := s.repo.GetByIDWithReviews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}
	return movie.ToResponse(m)
}

func (s *movieService) Create(ctx context.Context, req movie.CreateMovieRequest) (*movie.MovieResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity, err := movie.FromCreateRequest(req)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}
	entity.ID = id

	return movie.ToResponse(entity)
}

// Update replaces all five mutable fields unconditionally, then re-reads the
// movie with its reviews so the returned representation is complete.
func (s *movieService) Update(ctx context.Context, id int64, req movie.CreateMovieRequest) (*movie.MovieResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update movie %d: %w", id, err)
	}
	if !exists {
		return nil, movie.ErrMovieNotFound
	}

	entity, err := movie.FromCreateRequest(req)
	if err != nil {
		return nil, err
	}
	entity.ID = id

	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("update movie %d: %w", id, err)
	}

	updated, err := s.repo.GetByIDWithReviews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update movie %d: %w", id, err)
	}
	return movie.ToResponse(updated)
}

// Delete pre-checks existence so a missing id is reported as not-found
// rather than whatever the store surfaces for a no-op delete.
func (s *movieService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete movie %d: %w", id, err)
	}
	if !exists {
		return movie.ErrMovieNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete movie %d: %w", id, err)
	}
	return nil
}

func (s *movieService) FindByTitle(ctx context.Context, title string) ([]*movie.MovieResponse, error) {
	movies, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("find movies by title: %w", err)
	}
	return mapMovies(movies)
}

func (s *movieService) FindByGenre(ctx context.Context, genre string) ([]*movie.MovieResponse, error) {
	movies, err := s.repo.FindByGenre(ctx, genre)
	if err != nil {
		return nil, fmt.Errorf("find movies by genre: %w", err)
	}
	return mapMovies(movies)
}

func (s *movieService) FindByDirector(ctx context.Context, director string) ([]*movie.MovieResponse, error) {
	movies, err := s.repo.FindByDirector(ctx, director)
	if err != nil {
		return nil, fmt.Errorf("find movies by director: %w", err)
	}
	return mapMovies(movies)
}

func mapMovies(movies []*movie.Movie) ([]*movie.MovieResponse, error) {
	responses := make([]*movie.MovieResponse, 0, len(movies))
	for _, m := range movies {
		resp, err := movie.ToResponse(m)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

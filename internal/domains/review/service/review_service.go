package service

import (
	"context"
	"fmt"

	"github.com/tony-ross/netflix-catalog/internal/domains/review"
)

type reviewService struct {
	repo   review.Repository
	movies review.MovieChecker
	users  review.UserChecker
}

func NewReviewService(repo review.Repository, movies review.MovieChecker, users review.UserChecker) review.Service {
	return &reviewService{repo: repo, movies: movies, users: users}
}

// Create validates the input, then confirms both references resolve before
// any write. The checks produce friendly errors; the store's foreign keys
// remain the authoritative guard and map back to the same errors.
func (s *reviewService) Create(ctx context.Context, req review.CreateReviewRequest) (*review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	movieExists, err := s.movies.ExistsByID(ctx, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	if !movieExists {
		return nil, review.ErrMovieNotFound
	}

	userExists, err := s.users.ExistsByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	if !userExists {
		return nil, review.ErrUserNotFound
	}

	entity := &review.Review{
		Text:    req.Text,
		Rating:  req.Rating,
		MovieID: req.MovieID,
		UserID:  req.UserID,
	}

	id, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	entity.ID = id

	return review.ToResponse(entity)
}

func (s *reviewService) GetByID(ctx context.Context, id int64) (*review.ReviewResponse, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}
	return review.ToResponse(r)
}

// Update touches rating and text only; the movie and user references stay
// whatever they were at creation.
func (s *reviewService) Update(ctx context.Context, id int64, req review.UpdateReviewRequest) (*review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update review %d: %w", id, err)
	}

	existing.Rating = req.Rating
	existing.Text = req.Text

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update review %d: %w", id, err)
	}

	return review.ToResponse(existing)
}

func (s *reviewService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete review %d: %w", id, err)
	}
	if !exists {
		return review.ErrReviewNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review %d: %w", id, err)
	}
	return nil
}

func (s *reviewService) ListByMovie(ctx context.Context, movieID int64) ([]*review.ReviewResponse, error) {
	reviews, err := s.repo.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("list reviews for movie %d: %w", movieID, err)
	}
	return mapReviews(reviews)
}

func (s *reviewService) ListByUser(ctx context.Context, userID int64) ([]*review.ReviewResponse, error) {
	reviews, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviews for user %d: %w", userID, err)
	}
	return mapReviews(reviews)
}

func mapReviews(reviews []*review.Review) ([]*review.ReviewResponse, error) {
	responses := make([]*review.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp, err := review.ToResponse(r)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

package review

import "context"

// Service orchestrates validation, reference checks, store access and
// mapping for reviews. Reviews are never listed on their own in the API;
// ListByMovie and ListByUser back the nested movie and user routes.
type Service interface {
	Create(ctx context.Context, req CreateReviewRequest) (*ReviewResponse, error)
	GetByID(ctx context.Context, id int64) (*ReviewResponse, error)
	Update(ctx context.Context, id int64, req UpdateReviewRequest) (*ReviewResponse, error)
	Delete(ctx context.Context, id int64) error
	ListByMovie(ctx context.Context, movieID int64) ([]*ReviewResponse, error)
	ListByUser(ctx context.Context, userID int64) ([]*ReviewResponse, error)
}

// MovieChecker and UserChecker are the narrow slices of the movie and user
// stores the review service needs to confirm references resolve before a
// write. The foreign keys remain the authoritative guard.
type MovieChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type UserChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

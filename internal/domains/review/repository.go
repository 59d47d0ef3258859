package review

import "context"

type Repository interface {
	Create(ctx context.Context, r *Review) (int64, error)
	GetByID(ctx context.Context, id int64) (*Review, error)
	ListByMovie(ctx context.Context, movieID int64) ([]*Review, error)
	ListByUser(ctx context.Context, userID int64) ([]*Review, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id int64) error
}

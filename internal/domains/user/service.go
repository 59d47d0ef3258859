package user

import "context"

type Service interface {
	ListAll(ctx context.Context) ([]*UserResponse, error)
	GetByID(ctx context.Context, id int64) (*UserResponse, error)
	GetByUsername(ctx context.Context, username string) (*UserResponse, error)
	GetByEmail(ctx context.Context, email string) (*UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error)
	Update(ctx context.Context, id int64, req CreateUserRequest) (*UserResponse, error)
	Delete(ctx context.Context, id int64) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

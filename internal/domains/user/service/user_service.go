package service

import (
	"context"
	"fmt"

	"github.com/tony-ross/netflix-catalog/internal/domains/user"
	"github.com/tony-ross/netflix-catalog/pkg/hash"
)

type userService struct {
	repo   user.Repository
	hasher hash.PasswordHasher
}

func NewUserService(repo user.Repository, hasher hash.PasswordHasher) user.Service {
	return &userService{repo: repo, hasher: hasher}
}

func (s *userService) ListAll(ctx context.Context) ([]*user.UserResponse, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	responses := make([]*user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*user.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user.ToResponse(u), nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*user.UserResponse, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return user.ToResponse(u), nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*user.UserResponse, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user.ToResponse(u), nil
}

// Create checks username and email uniqueness before persisting so the
// caller learns which field collided. The repository repeats the checks
// inside its transaction and the unique indexes are the final word.
func (s *userService) Create(ctx context.Context, req user.CreateUserRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if taken {
		return nil, user.ErrUsernameAlreadyExists
	}

	taken, err = s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if taken {
		return nil, user.ErrEmailAlreadyExists
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	entity := &user.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	id, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	entity.ID = id

	return user.ToResponse(entity), nil
}

// Update re-checks uniqueness only for fields whose value actually changed,
// so a user keeping their own username or email never trips a false
// conflict. All fields are replaced, password included.
func (s *userService) Update(ctx context.Context, id int64, req user.CreateUserRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}

	if req.Username != existing.Username {
		taken, err := s.repo.ExistsByUsername(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("update user %d: %w", id, err)
		}
		if taken {
			return nil, user.ErrUsernameAlreadyExists
		}
	}

	if req.Email != existing.Email {
		taken, err := s.repo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("update user %d: %w", id, err)
		}
		if taken {
			return nil, user.ErrEmailAlreadyExists
		}
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}

	existing.Username = req.Username
	existing.Email = req.Email
	existing.Password = hashed
	existing.FirstName = req.FirstName
	existing.LastName = req.LastName

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}

	return user.ToResponse(existing), nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if !exists {
		return user.ErrUserNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

func (s *userService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.repo.ExistsByUsername(ctx, username)
}

func (s *userService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, email)
}

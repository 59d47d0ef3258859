package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tony-ross/netflix-catalog/internal/domains/user"
	"github.com/tony-ross/netflix-catalog/pkg/database"
)

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresUserRepository{pool: pool}
}

const selectUser = `
	SELECT id, username, email, password, first_name, last_name, created_at, updated_at
	FROM users
`

// Create re-checks uniqueness and inserts inside one transaction so two
// concurrent creations cannot both pass the check. The unique indexes still
// back the whole thing; a constraint violation maps to the same errors.
func (r *postgresUserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		var taken bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, u.Username).Scan(&taken); err != nil {
			return 0, fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return 0, user.ErrUsernameAlreadyExists
		}

		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, u.Email).Scan(&taken); err != nil {
			return 0, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return 0, user.ErrEmailAlreadyExists
		}

		query := `
			INSERT INTO users (username, email, password, first_name, last_name)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at
		`

		var id int64
		err := tx.QueryRow(ctx, query,
			u.Username, u.Email, u.Password, u.FirstName, u.LastName,
		).Scan(&id, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return 0, mapUniqueViolation(err, "failed to create user")
		}

		return id, nil
	})
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return r.get(ctx, selectUser+`WHERE id = $1`, id)
}

func (r *postgresUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.get(ctx, selectUser+`WHERE username = $1`, username)
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.get(ctx, selectUser+`WHERE email = $1`, email)
}

func (r *postgresUserRepository) ListAll(ctx context.Context) ([]*user.User, error) {
	rows, err := r.pool.Query(ctx, selectUser+`ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u := &user.User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (r *postgresUserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id)
}

func (r *postgresUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
}

func (r *postgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

// Update replaces every mutable field. The uniqueness re-checks exclude the
// user's own row, so an unchanged username or email never conflicts with
// itself.
func (r *postgresUserRepository) Update(ctx context.Context, u *user.User) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var taken bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 AND id <> $2)`, u.Username, u.ID).Scan(&taken); err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return user.ErrUsernameAlreadyExists
		}

		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)`, u.Email, u.ID).Scan(&taken); err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return user.ErrEmailAlreadyExists
		}

		query := `
			UPDATE users
			SET username = $2, email = $3, password = $4, first_name = $5, last_name = $6, updated_at = now()
			WHERE id = $1
			RETURNING updated_at
		`

		err := tx.QueryRow(ctx, query,
			u.ID, u.Username, u.Email, u.Password, u.FirstName, u.LastName,
		).Scan(&u.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return user.ErrUserNotFound
			}
			return mapUniqueViolation(err, "failed to update user")
		}

		return nil
	})
}

// Delete relies on the reviews foreign key cascading; a deleted user's
// reviews go with them.
func (r *postgresUserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *postgresUserRepository) get(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	u := &user.User{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (r *postgresUserRepository) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func mapUniqueViolation(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "username") {
			return user.ErrUsernameAlreadyExists
		}
		if strings.Contains(pgErr.ConstraintName, "email") {
			return user.ErrEmailAlreadyExists
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

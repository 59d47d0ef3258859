package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tony-ross/netflix-catalog/internal/domains/review"
)

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) review.Repository {
	return &postgresReviewRepository{pool: pool}
}

const selectReview = `
	SELECT id, text, rating, movie_id, user_id, created_at, updated_at
	FROM reviews
`

func (r *postgresReviewRepository) Create(ctx context.Context, rv *review.Review) (int64, error) {
	query := `
		INSERT INTO reviews (text, rating, movie_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		rv.Text, rv.Rating, rv.MovieID, rv.UserID,
	).Scan(&id, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		// Foreign key violations are the authoritative reference guard.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if strings.Contains(pgErr.ConstraintName, "movie") {
				return 0, review.ErrMovieNotFound
			}
			return 0, review.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to create review: %w", err)
	}

	return id, nil
}

func (r *postgresReviewRepository) GetByID(ctx context.Context, id int64) (*review.Review, error) {
	rv := &review.Review{}
	err := r.pool.QueryRow(ctx, selectReview+`WHERE id = $1`, id).Scan(
		&rv.ID, &rv.Text, &rv.Rating, &rv.MovieID, &rv.UserID, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, review.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return rv, nil
}

func (r *postgresReviewRepository) ListByMovie(ctx context.Context, movieID int64) ([]*review.Review, error) {
	return r.list(ctx, selectReview+`WHERE movie_id = $1 ORDER BY id`, movieID)
}

func (r *postgresReviewRepository) ListByUser(ctx context.Context, userID int64) ([]*review.Review, error) {
	return r.list(ctx, selectReview+`WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *postgresReviewRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM reviews WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return exists, nil
}

// Update writes rating and text only and refreshes the entity's update
// timestamp from the store.
func (r *postgresReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, text = $3, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query, rv.ID, rv.Rating, rv.Text).Scan(&rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return review.ErrReviewNotFound
		}
		return fmt.Errorf("failed to update review: %w", err)
	}

	return nil
}

func (r *postgresReviewRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

func (r *postgresReviewRepository) list(ctx context.Context, query string, args ...interface{}) ([]*review.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*review.Review
	for rows.Next() {
		rv := &review.Review{}
		if err := rows.Scan(&rv.ID, &rv.Text, &rv.Rating, &rv.MovieID, &rv.UserID, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

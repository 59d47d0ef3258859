package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tony-ross/netflix-catalog/internal/domains/movie"
)

type postgresMovieRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresMovieRepository(pool *pgxpool.Pool) movie.Repository {
	return &postgresMovieRepository{pool: pool}
}

const selectMovie = `
	SELECT id, title, description, release_date, genre, director
	FROM movies
`

func (r *postgresMovieRepository) Create(ctx context.Context, m *movie.Movie) (int64, error) {
	query := `
		INSERT INTO movies (title, description, release_date, genre, director)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		m.Title, m.Description, m.ReleaseDate, m.Genre, m.Director,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create movie: %w", err)
	}

	return id, nil
}

func (r *postgresMovieRepository) GetByID(ctx context.Context, id int64) (*movie.Movie, error) {
	m := &movie.Movie{}
	err := r.pool.QueryRow(ctx, selectMovie+`WHERE id = $1`, id).Scan(
		&m.ID, &m.Title, &m.Description, &m.ReleaseDate, &m.Genre, &m.Director,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, movie.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	return m, nil
}

func (r *postgresMovieRepository) GetByIDWithReviews(ctx context.Context, id int64) (*movie.Movie, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.attachReviews(ctx, []*movie.Movie{m}); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *postgresMovieRepository) ListAllWithReviews(ctx context.Context) ([]*movie.Movie, error) {
	return r.queryWithReviews(ctx, selectMovie+`ORDER BY id`)
}

// FindByTitle is a case-insensitive substring match.
func (r *postgresMovieRepository) FindByTitle(ctx context.Context, title string) ([]*movie.Movie, error) {
	query := selectMovie + `WHERE title ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryWithReviews(ctx, query, title)
}

// FindByGenre is an exact match.
func (r *postgresMovieRepository) FindByGenre(ctx context.Context, genre string) ([]*movie.Movie, error) {
	query := selectMovie + `WHERE genre = $1 ORDER BY id`
	return r.queryWithReviews(ctx, query, genre)
}

// FindByDirector is a case-insensitive substring match.
func (r *postgresMovieRepository) FindByDirector(ctx context.Context, director string) ([]*movie.Movie, error) {
	query := selectMovie + `WHERE director ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryWithReviews(ctx, query, director)
}

func (r *postgresMovieRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM movies WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check movie existence: %w", err)
	}
	return exists, nil
}

func (r *postgresMovieRepository) Update(ctx context.Context, m *movie.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, description = $3, release_date = $4, genre = $5, director = $6
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		m.ID, m.Title, m.Description, m.ReleaseDate, m.Genre, m.Director,
	)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}
	if result.RowsAffected() == 0 {
		return movie.ErrMovieNotFound
	}

	return nil
}

// Delete relies on the reviews foreign key cascading, so a movie's reviews
// go with it.
func (r *postgresMovieRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	if result.RowsAffected() == 0 {
		return movie.ErrMovieNotFound
	}

	return nil
}

func (r *postgresMovieRepository) queryWithReviews(ctx context.Context, query string, args ...interface{}) ([]*movie.Movie, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	var movies []*movie.Movie
	for rows.Next() {
		m := &movie.Movie{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.ReleaseDate, &m.Genre, &m.Director); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	if err := r.attachReviews(ctx, movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// attachReviews resolves the review relationship for the given movies in one
// round trip, with the author's username already joined in.
func (r *postgresMovieRepository) attachReviews(ctx context.Context, movies []*movie.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(movies))
	byID := make(map[int64]*movie.Movie, len(movies))
	for _, m := range movies {
		ids = append(ids, m.ID)
		byID[m.ID] = m
		m.Reviews = []movie.ReviewEntry{}
	}

	query := `
		SELECT rv.id, rv.text, rv.rating, rv.movie_id, u.username
		FROM reviews rv
		LEFT JOIN users u ON u.id = rv.user_id
		WHERE rv.movie_id = ANY($1)
		ORDER BY rv.id
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load reviews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry movie.ReviewEntry
		var movieID int64
		if err := rows.Scan(&entry.ID, &entry.Text, &entry.Rating, &movieID, &entry.Username); err != nil {
			return fmt.Errorf("failed to scan review: %w", err)
		}
		if m, ok := byID[movieID]; ok {
			m.Reviews = append(m.Reviews, entry)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to load reviews: %w", err)
	}

	return nil
}

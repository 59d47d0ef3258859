package service

import (
	"context"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tony-ross/netflix-catalog/internal/domains/movie"
)

type stubMovieRepo struct {
	movies map[int64]*movie.Movie
	nextID int64

	createCalls int
	updateCalls int
	deleteCalls int
}

func newStubMovieRepo(seed ...*movie.Movie) *stubMovieRepo {
	r := &stubMovieRepo{movies: map[int64]*movie.Movie{}, nextID: 1}
	for _, m := range seed {
		r.movies[m.ID] = m
		if m.ID >= r.nextID {
			r.nextID = m.ID + 1
		}
	}
	return r
}

func (r *stubMovieRepo) Create(_ context.Context, m *movie.Movie) (int64, error) {
	r.createCalls++
	id := r.nextID
	r.nextID++
	stored := *m
	stored.ID = id
	r.movies[id] = &stored
	return id, nil
}

func (r *stubMovieRepo) GetByID(_ context.Context, id int64) (*movie.Movie, error) {
	return r.get(id)
}

func (r *stubMovieRepo) GetByIDWithReviews(_ context.Context, id int64) (*movie.Movie, error) {
	return r.get(id)
}

func (r *stubMovieRepo) get(id int64) (*movie.Movie, error) {
	m, ok := r.movies[id]
	if !ok {
		return nil, movie.ErrMovieNotFound
	}
	return m, nil
}

func (r *stubMovieRepo) ListAllWithReviews(_ context.Context) ([]*movie.Movie, error) {
	out := make([]*movie.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		out = append(out, m)
	}
	return out, nil
}

func (r *stubMovieRepo) FindByTitle(_ context.Context, title string) ([]*movie.Movie, error) {
	return r.ListAllWithReviews(context.Background())
}

func (r *stubMovieRepo) FindByGenre(_ context.Context, genre string) ([]*movie.Movie, error) {
	return r.ListAllWithReviews(context.Background())
}

func (r *stubMovieRepo) FindByDirector(_ context.Context, director string) ([]*movie.Movie, error) {
	return r.ListAllWithReviews(context.Background())
}

func (r *stubMovieRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.movies[id]
	return ok, nil
}

func (r *stubMovieRepo) Update(_ context.Context, m *movie.Movie) error {
	r.updateCalls++
	if _, ok := r.movies[m.ID]; !ok {
		return movie.ErrMovieNotFound
	}
	stored := *m
	r.movies[m.ID] = &stored
	return nil
}

func (r *stubMovieRepo) Delete(_ context.Context, id int64) error {
	r.deleteCalls++
	if _, ok := r.movies[id]; !ok {
		return movie.ErrMovieNotFound
	}
	delete(r.movies, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestCreateReturnsStoredMovie(t *testing.T) {
	repo := newStubMovieRepo()
	svc := NewMovieService(repo)

	resp, err := svc.Create(context.Background(), movie.CreateMovieRequest{
		Title:       "Heat",
		Genre:       strPtr("Crime"),
		ReleaseDate: strPtr("1995-12-15"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Heat", resp.Title)
	assert.Equal(t, strPtr("1995-12-15"), resp.ReleaseDate)
	assert.Empty(t, resp.Reviews)
	assert.Nil(t, resp.AverageRating)
}

func TestCreateInvalidInputSkipsStore(t *testing.T) {
	repo := newStubMovieRepo()
	svc := NewMovieService(repo)

	_, err := svc.Create(context.Background(), movie.CreateMovieRequest{Title: ""})

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Zero(t, repo.createCalls)
}

func TestUpdateMissingMovie(t *testing.T) {
	repo := newStubMovieRepo()
	svc := NewMovieService(repo)

	_, err := svc.Update(context.Background(), 42, movie.CreateMovieRequest{Title: "Heat"})

	assert.ErrorIs(t, err, movie.ErrMovieNotFound)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateReplacesAllFields(t *testing.T) {
	repo := newStubMovieRepo(&movie.Movie{
		ID:          7,
		Title:       "Alien",
		Description: strPtr("old description"),
		Genre:       strPtr("Horror"),
	})
	svc := NewMovieService(repo)

	resp, err := svc.Update(context.Background(), 7, movie.CreateMovieRequest{Title: "Aliens"})
	require.NoError(t, err)

	assert.Equal(t, "Aliens", resp.Title)
	// Omitted optional fields clear stored values; updates replace, not merge.
	assert.Nil(t, resp.Description)
	assert.Nil(t, resp.Genre)
}

func TestDeleteMissingMovie(t *testing.T) {
	repo := newStubMovieRepo()
	svc := NewMovieService(repo)

	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, movie.ErrMovieNotFound)
	assert.Zero(t, repo.deleteCalls)
}

func TestDeleteExisting(t *testing.T) {
	repo := newStubMovieRepo(&movie.Movie{ID: 5, Title: "Seven"})
	svc := NewMovieService(repo)

	require.NoError(t, svc.Delete(context.Background(), 5))
	assert.Equal(t, 1, repo.deleteCalls)
	assert.NotContains(t, repo.movies, int64(5))
}

func TestGetByIDMapsReviews(t *testing.T) {
	repo := newStubMovieRepo(&movie.Movie{
		ID:    3,
		Title: "Se7en",
		Reviews: []movie.ReviewEntry{
			{ID: 1, Rating: 4, Username: strPtr("alice")},
			{ID: 2, Rating: 5, Username: strPtr("bob")},
		},
	})
	svc := NewMovieService(repo)

	resp, err := svc.GetByID(context.Background(), 3)
	require.NoError(t, err)

	require.NotNil(t, resp.AverageRating)
	assert.InDelta(t, 4.5, *resp.AverageRating, 1e-9)
	assert.Equal(t, 2, resp.ReviewCount)
}

func TestGetByIDPropagatesNotFound(t *testing.T) {
	svc := NewMovieService(newStubMovieRepo())

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, movie.ErrMovieNotFound)
}

func TestListAllEmpty(t *testing.T) {
	svc := NewMovieService(newStubMovieRepo())

	out, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestCreateUnparseableDateAfterValidation(t *testing.T) {
	// Validation accepts only layout-conformant dates, so the parse step
	// can fail only on values that bypassed Validate. Exercised directly.
	_, err := movie.FromCreateRequest(movie.CreateMovieRequest{
		Title:       "x",
		ReleaseDate: strPtr("bogus"),
	})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, movie.ErrMovieNotFound))
}

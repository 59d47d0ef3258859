package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tony-ross/netflix-catalog/internal/domains/user"
)

type stubUserRepo struct {
	users  map[int64]*user.User
	nextID int64

	createCalls int
	existsCalls int
}

func newStubUserRepo(seed ...*user.User) *stubUserRepo {
	r := &stubUserRepo{users: map[int64]*user.User{}, nextID: 1}
	for _, u := range seed {
		r.users[u.ID] = u
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, u *user.User) (int64, error) {
	r.createCalls++
	id := r.nextID
	r.nextID++
	stored := *u
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]*user.User, error) {
	out := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.existsCalls++
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.existsCalls++
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// stubHasher marks passwords instead of hashing so tests can observe that
// the service never stores plaintext.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (stubHasher) Compare(hashed, password string) bool { return hashed == "hashed:"+password }

func strPtr(s string) *string { return &s }

func validRequest() user.CreateUserRequest {
	return user.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, stubHasher{})

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	stored := repo.users[resp.ID]
	assert.Equal(t, "hashed:correct horse", stored.Password)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice", resp.FullName)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := newStubUserRepo(&user.User{ID: 1, Username: "alice", Email: "other@example.com"})
	svc := NewUserService(repo, stubHasher{})

	_, err := svc.Create(context.Background(), validRequest())

	assert.ErrorIs(t, err, user.ErrUsernameAlreadyExists)
	assert.Zero(t, repo.createCalls)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo(&user.User{ID: 1, Username: "bob", Email: "alice@example.com"})
	svc := NewUserService(repo, stubHasher{})

	_, err := svc.Create(context.Background(), validRequest())

	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
	assert.Zero(t, repo.createCalls)
}

func TestUpdateUserKeepingOwnIdentifiers(t *testing.T) {
	repo := newStubUserRepo(&user.User{
		ID: 3, Username: "alice", Email: "alice@example.com", Password: "hashed:old",
	})
	svc := NewUserService(repo, stubHasher{})

	req := validRequest()
	req.FirstName = strPtr("Alice")

	resp, err := svc.Update(context.Background(), 3, req)
	require.NoError(t, err)

	// Unchanged username and email never trigger uniqueness lookups.
	assert.Zero(t, repo.existsCalls)
	assert.Equal(t, "Alice", resp.FullName)
	assert.Equal(t, "hashed:correct horse", repo.users[3].Password)
}

func TestUpdateUserToTakenUsername(t *testing.T) {
	repo := newStubUserRepo(
		&user.User{ID: 1, Username: "alice", Email: "alice@example.com"},
		&user.User{ID: 2, Username: "bob", Email: "bob@example.com"},
	)
	svc := NewUserService(repo, stubHasher{})

	req := validRequest()
	req.Username = "bob"
	req.Email = "alice@example.com"

	_, err := svc.Update(context.Background(), 1, req)
	assert.ErrorIs(t, err, user.ErrUsernameAlreadyExists)
}

func TestUpdateUserMissing(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), stubHasher{})

	_, err := svc.Update(context.Background(), 50, validRequest())
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDeleteUserMissing(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), stubHasher{})

	err := svc.Delete(context.Background(), 50)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGetByUsername(t *testing.T) {
	repo := newStubUserRepo(&user.User{ID: 1, Username: "alice", Email: "alice@example.com"})
	svc := NewUserService(repo, stubHasher{})

	resp, err := svc.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	_, err = svc.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

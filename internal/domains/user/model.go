package user

import (
	"strings"
	"time"
)

// User is the persisted account entity. Password holds the bcrypt hash; the
// plaintext never crosses the repository boundary.
type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string
	FirstName *string
	LastName  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins first and last name, falling back to the username when
// neither is set. Derived, never persisted.
func (u *User) FullName() string {
	if u.FirstName == nil && u.LastName == nil {
		return u.Username
	}

	var parts []string
	if u.FirstName != nil {
		parts = append(parts, *u.FirstName)
	}
	if u.LastName != nil {
		parts = append(parts, *u.LastName)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

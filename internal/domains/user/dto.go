package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateUserRequest is the input for both create and update; updates replace
// every field, including the password.
type CreateUserRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// Validate checks fields one at a time so the first violation decides the
// error message.
func (r CreateUserRequest) Validate() error {
	if err := validation.Validate(r.Username,
		validation.Required.Error("cannot be blank"),
		validation.Length(3, 50),
	); err != nil {
		return validation.Errors{"username": err}
	}
	if err := validation.Validate(r.Email,
		validation.Required.Error("cannot be blank"),
		validation.Length(1, 100),
	); err != nil {
		return validation.Errors{"email": err}
	}
	if err := validation.Validate(r.Password,
		validation.Required.Error("cannot be blank"),
		validation.Length(8, 0),
	); err != nil {
		return validation.Errors{"password": err}
	}
	if err := validation.Validate(r.FirstName, validation.Length(0, 100)); err != nil {
		return validation.Errors{"first_name": err}
	}
	if err := validation.Validate(r.LastName, validation.Length(0, 100)); err != nil {
		return validation.Errors{"last_name": err}
	}
	return nil
}

// UserResponse never exposes the password, hashed or otherwise.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse maps a persisted user outward, computing the full name.
func ToResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`       // Primary key
	Email        string    `db:"email"`         // Unique login
	DisplayName  *string   `db:"display_name"`  // Optional name shown in the app
	PasswordHash string    `db:"password_hash"` // bcrypt hash
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// CurrentUser is the identity of the signed-in user.
type CurrentUser struct {
	ID          string  `json:"id"`
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// ToCurrentUser strips credentials from a user record.
func (u *UserDB) ToCurrentUser() *CurrentUser {
	email := u.Email
	return &CurrentUser{
		ID:          u.UserID.String(),
		DisplayName: u.DisplayName,
		Email:       &email,
	}
}

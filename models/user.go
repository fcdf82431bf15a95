package models

import "time"

// User represents a local account of the news client.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email identifies the user at login and is unique.
	Email string `json:"email"`

	// Password is stored and compared in cleartext.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "usuarios"
}

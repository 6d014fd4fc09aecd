package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name         string    `json:"name" db:"name" example:"Arun Kumar"`                      // Display name
	Email        string    `json:"email" db:"email" example:"arun@x.edu"`                    // User's email address (unique)
	PasswordHash string    `json:"-" db:"password_hash"`                                     // Salted one-way hash (excluded from JSON)
	Role         RoleType  `json:"role" db:"role" example:"student"`                         // student, admin or recruiter
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}

// Public returns a copy of the user with the credential stripped. Store
// reads hand this shape to callers so the hash never crosses the facade
// boundary on a successful login.
func (u *User) Public() *User {
	pub := *u
	pub.PasswordHash = ""
	return &pub
}

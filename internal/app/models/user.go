package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Avatar       *string   `json:"avatar,omitempty" db:"avatar"`
	Email        string    `json:"email" db:"email"`
	PasswordHash *string   `json:"-" db:"password_hash"` // Nullable: seeded rows have no credentials
	Bio          *string   `json:"bio,omitempty" db:"bio"`
	Department   *string   `json:"department,omitempty" db:"department"`
	Year         *int      `json:"year,omitempty" db:"year"`
	Age          *int      `json:"age,omitempty" db:"age"`
	Interests    *string   `json:"interests,omitempty" db:"interests"` // JSON-encoded list
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

package models

import "time"

// Mentor availability states
const (
	MentorAvailable = "available"
	MentorBusy      = "busy"
	MentorOffline   = "offline"
)

// Mentor wraps exactly one user with a mentoring profile. Rating and
// sessions_completed are externally maintained aggregates.
type Mentor struct {
	ID                int64     `json:"id" db:"id"`
	UserID            int64     `json:"userId" db:"user_id"`
	Title             string    `json:"title" db:"title"`
	Company           string    `json:"company" db:"company"`
	Bio               *string   `json:"bio,omitempty" db:"bio"`
	Availability      string    `json:"availability" db:"availability"`
	Rating            float64   `json:"rating" db:"rating"`
	SessionsCompleted int       `json:"sessionsCompleted" db:"sessions_completed"`
	ResponseTime      *string   `json:"responseTime,omitempty" db:"response_time"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	User      *User    `json:"user,omitempty"`
	Expertise []string `json:"expertise,omitempty"`
}

package models

import "time"

// Event represents a community event
type Event struct {
	ID          int64     `json:"id" db:"id"`
	CommunityID *int64    `json:"communityId,omitempty" db:"community_id"`
	Title       string    `json:"title" db:"title"`
	Date        time.Time `json:"date" db:"date"`
	Time        *string   `json:"time,omitempty" db:"time"`
	Location    *string   `json:"location,omitempty" db:"location"`
	Image       *string   `json:"image,omitempty" db:"image"`
	Description *string   `json:"description,omitempty" db:"description"`
	Capacity    *int      `json:"capacity,omitempty" db:"capacity"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Community *Community `json:"community,omitempty"`
}

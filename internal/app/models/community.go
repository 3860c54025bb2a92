package models

import "time"

// Community represents a student community
type Community struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Avatar      *string   `json:"avatar,omitempty" db:"avatar"`
	Description *string   `json:"description,omitempty" db:"description"`
	Category    *string   `json:"category,omitempty" db:"category"`
	Established *string   `json:"established,omitempty" db:"established"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Tags          []string `json:"tags,omitempty"`
	FollowerCount int64    `json:"followerCount,omitempty"`
}

// CommunityTag is a single label attached to a community
type CommunityTag struct {
	ID          int64  `json:"id" db:"id"`
	CommunityID int64  `json:"communityId" db:"community_id"`
	Tag         string `json:"tag" db:"tag"`
}

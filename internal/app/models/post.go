package models

import "time"

// Post types
const (
	PostTypeText         = "text"
	PostTypeCommunity    = "community"
	PostTypeEvent        = "event"
	PostTypeAnnouncement = "announcement"
)

// Post represents a feed post authored by a user, optionally bound to a
// community and an event.
type Post struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	CommunityID *int64    `json:"communityId,omitempty" db:"community_id"`
	EventID     *int64    `json:"eventId,omitempty" db:"event_id"`
	Content     string    `json:"content" db:"content"`
	Type        string    `json:"type" db:"type"`
	MediaType   *string   `json:"mediaType,omitempty" db:"media_type"`
	MediaURL    *string   `json:"mediaUrl,omitempty" db:"media_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Author    *User      `json:"author,omitempty"`
	Community *Community `json:"community,omitempty"`
	Event     *Event     `json:"event,omitempty"`
}

// Comment belongs to one post and one author
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Author *User `json:"author,omitempty"`
}

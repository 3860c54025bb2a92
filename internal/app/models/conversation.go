package models

import "time"

// Conversation binds exactly two distinct participants. At most one
// conversation exists per unordered user pair.
type Conversation struct {
	ID            int64     `json:"id" db:"id"`
	User1ID       int64     `json:"user1Id" db:"user1_id"`
	User2ID       int64     `json:"user2Id" db:"user2_id"`
	LastMessageAt time.Time `json:"lastMessageAt" db:"last_message_at"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// HasParticipant reports whether the user is one of the two participants.
func (c *Conversation) HasParticipant(userID int64) bool {
	return c.User1ID == userID || c.User2ID == userID
}

// OtherParticipant returns the participant that is not the given user.
func (c *Conversation) OtherParticipant(userID int64) int64 {
	if c.User1ID == userID {
		return c.User2ID
	}
	return c.User1ID
}

// Message belongs to one conversation and one sender
type Message struct {
	ID             int64     `json:"id" db:"id"`
	ConversationID int64     `json:"conversationId" db:"conversation_id"`
	SenderID       int64     `json:"senderId" db:"sender_id"`
	Content        string    `json:"content" db:"content"`
	IsRead         bool      `json:"isRead" db:"is_read"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`

	Sender *User `json:"sender,omitempty"`
}

package dto

// ConversationUser is the counterpart projection in conversation listings
type ConversationUser struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// LastMessagePreview is the most recent message in a conversation listing
type LastMessagePreview struct {
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	SenderID  string `json:"senderId"`
}

// ConversationResponse is a conversation annotated for the viewer: the other
// participant, the latest message, and how many incoming messages are unread.
type ConversationResponse struct {
	ID            string              `json:"id"`
	OtherUser     ConversationUser    `json:"otherUser"`
	LastMessage   *LastMessagePreview `json:"lastMessage"`
	UnreadCount   int64               `json:"unreadCount"`
	LastMessageAt string              `json:"lastMessageAt"`
}

// ConversationListResponse wraps a viewer's conversations
type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
}

// CreateConversationRequest is the payload for conversation create-or-get
type CreateConversationRequest struct {
	User1ID int64 `json:"user1_id" binding:"required"`
	User2ID int64 `json:"user2_id" binding:"required"`
}

// ConversationRef reports the conversation id and whether it was just created
type ConversationRef struct {
	ID      string `json:"id"`
	Created bool   `json:"created"`
}

// CreateConversationResponse wraps the create-or-get result
type CreateConversationResponse struct {
	Conversation ConversationRef `json:"conversation"`
}

// MessageSender is the sender projection embedded in messages
type MessageSender struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// MessageResponse is a single message projection
type MessageResponse struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	SenderID  string        `json:"senderId"`
	IsRead    bool          `json:"isRead"`
	Timestamp string        `json:"timestamp"`
	Sender    MessageSender `json:"sender"`
}

// MessageListResponse is the paginated message envelope; messages are ordered
// oldest-first within the page.
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Pagination
}

// SendMessageRequest is the payload for sending a message
type SendMessageRequest struct {
	SenderID int64  `json:"sender_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// SendMessageResponse wraps the created message
type SendMessageResponse struct {
	Message string          `json:"message"`
	Data    MessageResponse `json:"data"`
}

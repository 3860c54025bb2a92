package dto

// PostAuthor is the author projection embedded in posts
type PostAuthor struct {
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// PostCommunityRef is the community projection embedded in posts
type PostCommunityRef struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// PostEventRef is the event projection embedded in posts
type PostEventRef struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Date  string  `json:"date"`
	Image *string `json:"image"`
}

// PostResponse is a single feed item annotated with the viewer-relative
// isLiked flag.
type PostResponse struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Author    PostAuthor        `json:"author"`
	Content   string            `json:"content"`
	Timestamp string            `json:"timestamp"`
	Likes     int64             `json:"likes"`
	IsLiked   bool              `json:"isLiked"`
	MediaType *string           `json:"mediaType"`
	MediaURL  *string           `json:"mediaUrl"`
	Community *PostCommunityRef `json:"community,omitempty"`
	Event     *PostEventRef     `json:"event,omitempty"`
}

// FeedResponse is the paginated feed envelope
type FeedResponse struct {
	Posts []PostResponse `json:"posts"`
	Pagination
}

// CreatePostRequest is the payload for creating a post
type CreatePostRequest struct {
	UserID      int64   `json:"user_id" binding:"required"`
	Content     string  `json:"content" binding:"required"`
	Type        string  `json:"type"`
	CommunityID *int64  `json:"community_id"`
	EventID     *int64  `json:"event_id"`
	MediaType   *string `json:"media_type"`
	MediaURL    *string `json:"media_url"`
}

// CreatePostResponse wraps the created post
type CreatePostResponse struct {
	Message string       `json:"message"`
	Post    PostResponse `json:"post"`
}

// UserIDRequest carries the acting user for body-authorized mutations
type UserIDRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

// LikeToggleResponse reports the new like state and count after a toggle
type LikeToggleResponse struct {
	Likes   int64 `json:"likes"`
	IsLiked bool  `json:"isLiked"`
}

// CommentAuthor is the author projection embedded in comments
type CommentAuthor struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// CommentResponse is a single comment projection
type CommentResponse struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Timestamp string        `json:"timestamp"`
	Author    CommentAuthor `json:"author"`
}

// CommentListResponse is the paginated comment envelope
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Pagination
}

// CreateCommentRequest is the payload for adding a comment to a post
type CreateCommentRequest struct {
	UserID  int64  `json:"user_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateCommentResponse wraps the created comment
type CreateCommentResponse struct {
	Message string          `json:"message"`
	Comment CommentResponse `json:"comment"`
}

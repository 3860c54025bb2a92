package dto

// CommunityEventRef is the upcoming-event projection embedded in community listings
type CommunityEventRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// CommunityPostRef is the recent-post projection embedded in community listings
type CommunityPostRef struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Likes     int64  `json:"likes"`
}

// CommunityResponse is a single community annotated with the viewer-relative
// isFollowing flag. The members field reports the follower count, matching the
// public API shape.
type CommunityResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Avatar         *string             `json:"avatar"`
	Members        int64               `json:"members"`
	IsFollowing    bool                `json:"isFollowing"`
	Category       *string             `json:"category"`
	Description    *string             `json:"description"`
	Established    *string             `json:"established"`
	Tags           []string            `json:"tags"`
	UpcomingEvents []CommunityEventRef `json:"upcomingEvents"`
	RecentPosts    []CommunityPostRef  `json:"recentPosts"`
}

// CommunityListResponse is the paginated community envelope
type CommunityListResponse struct {
	Communities []CommunityResponse `json:"communities"`
	Pagination
}

// FollowToggleResponse reports the new follow state and follower count
type FollowToggleResponse struct {
	IsFollowing bool  `json:"isFollowing"`
	Members     int64 `json:"members"`
}

package dto

// EventResponse is a single event annotated with the viewer-relative
// isInterested flag.
type EventResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Community       *string `json:"community"`
	CommunityAvatar *string `json:"communityAvatar"`
	Date            string  `json:"date"`
	Time            *string `json:"time"`
	Location        *string `json:"location"`
	Image           *string `json:"image"`
	Interested      int64   `json:"interested"`
	IsInterested    bool    `json:"isInterested"`
	Description     *string `json:"description"`
	Capacity        *int    `json:"capacity"`
}

// EventListResponse is the paginated event envelope
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Pagination
}

// InterestToggleResponse reports the new interest state and count
type InterestToggleResponse struct {
	IsInterested bool  `json:"isInterested"`
	Interested   int64 `json:"interested"`
}

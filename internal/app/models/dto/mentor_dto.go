package dto

// MentorResponse is a single mentor annotated with the viewer-relative
// isFollowing flag.
type MentorResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Avatar            *string  `json:"avatar"`
	Title             string   `json:"title"`
	Company           string   `json:"company"`
	Expertise         []string `json:"expertise"`
	Availability      string   `json:"availability"`
	Rating            float64  `json:"rating"`
	SessionsCompleted int      `json:"sessionsCompleted"`
	Bio               *string  `json:"bio"`
	ResponseTime      *string  `json:"responseTime"`
	IsFollowing       bool     `json:"isFollowing"`
}

// MentorListResponse is the paginated mentor envelope
type MentorListResponse struct {
	Mentors []MentorResponse `json:"mentors"`
	Pagination
}

// MentorFollowToggleResponse reports the new follow state
type MentorFollowToggleResponse struct {
	IsFollowing bool `json:"isFollowing"`
}

package dto

// UploadResponse reports where an uploaded media file was stored
type UploadResponse struct {
	Message   string `json:"message"`
	MediaURL  string `json:"media_url"`
	Filename  string `json:"filename"`
	MediaType string `json:"media_type"`
}

// DiscoverStats are headline numbers for the discover screen
type DiscoverStats struct {
	ActiveUsers int64 `json:"activeUsers"`
	OnlineToday int64 `json:"onlineToday"`
	NewMatches  int64 `json:"newMatches"`
}

// DiscoverStatsResponse wraps discover statistics
type DiscoverStatsResponse struct {
	Stats DiscoverStats `json:"stats"`
}

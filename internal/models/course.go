package models

type Course struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	YoutubeID   string  `json:"youtube_id"`
	Description *string `json:"description"`
}

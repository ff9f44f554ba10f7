package models

import "time"

type NewsArticle struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PubDate     time.Time `json:"pub_date"`
	ImageURL    *string   `json:"image_url"`
	ImageHandle *string   `json:"-"`
}

func (a *NewsArticle) Image() StoredImage {
	return imageFrom(a.ImageURL, a.ImageHandle)
}

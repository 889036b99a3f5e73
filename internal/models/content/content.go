package models

import "time"

// Event is a calendar entry shown on the public events pages.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"eventDate"`
	Language    string    `json:"language"`
	Categories  []string  `json:"categories"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Post is a blog article.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"publishedAt"`
	Categories  []string  `json:"categories"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MediaAsset is an uploaded image or video, optionally linked to an event
// or post.
type MediaAsset struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Filename   string    `json:"filename"`
	MediaType  string    `json:"mediaType"` // image | video
	URL        string    `json:"url"`
	LinkedType string    `json:"linkedType,omitempty"` // event | post
	LinkedID   string    `json:"linkedId,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Category labels events or posts; content_type decides which.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"` // event | post
	CreatedAt   time.Time `json:"createdAt"`
}

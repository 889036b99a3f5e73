package models

type CreatePostRequest struct {
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	PublishedAt string   `json:"publishedAt,omitempty"` // defaults to now
	Categories  []string `json:"categories,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

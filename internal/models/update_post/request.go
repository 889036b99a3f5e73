package models

// UpdatePostRequest carries partial updates; nil fields keep the stored
// value.
type UpdatePostRequest struct {
	Title       *string   `json:"title,omitempty"`
	Body        *string   `json:"body,omitempty"`
	PublishedAt *string   `json:"publishedAt,omitempty"`
	Categories  *[]string `json:"categories,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

package models

// UpdateEventRequest carries partial updates; nil fields keep the stored
// value, matching the original dashboard form behavior.
type UpdateEventRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	EventDate   *string   `json:"eventDate,omitempty"`
	Language    *string   `json:"language,omitempty"`
	Categories  *[]string `json:"categories,omitempty"`
}

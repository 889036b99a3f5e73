package models

type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	EventDate   string   `json:"eventDate"` // RFC 3339 or 2006-01-02T15:04
	Language    string   `json:"language,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

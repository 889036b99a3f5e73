package models

type TrackRequest struct {
	Page        string  `json:"page"`
	Interaction string  `json:"interaction,omitempty"` // defaults to "view"
	Score       float64 `json:"score,omitempty"`       // defaults to 0.5
}

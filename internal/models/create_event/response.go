package models

import contentmodels "io.lumenworks.contenthub/internal/models/content"

type CreateEventResponse struct {
	Event   contentmodels.Event `json:"event"`
	Message string              `json:"message"`
}

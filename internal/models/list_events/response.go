package models

import contentmodels "io.lumenworks.contenthub/internal/models/content"

type ListEventsResponse struct {
	Events []contentmodels.Event `json:"events"`
	Total  int                   `json:"total"`
}

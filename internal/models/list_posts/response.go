package models

import contentmodels "io.lumenworks.contenthub/internal/models/content"

type ListPostsResponse struct {
	Posts []contentmodels.Post `json:"posts"`
	Total int                  `json:"total"`
}

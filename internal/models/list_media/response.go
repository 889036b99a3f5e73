package models

import contentmodels "io.lumenworks.contenthub/internal/models/content"

type ListMediaResponse struct {
	Media []contentmodels.MediaAsset `json:"media"`
	Total int                        `json:"total"`
}

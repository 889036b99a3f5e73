package models

import contentmodels "io.lumenworks.contenthub/internal/models/content"

type CreatePostResponse struct {
	Post    contentmodels.Post `json:"post"`
	Message string             `json:"message"`
}

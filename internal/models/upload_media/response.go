package models

import contentmodels "io.lumenworks.contenthub/internal/models/content"

type UploadMediaResponse struct {
	Uploaded []contentmodels.MediaAsset `json:"uploaded"`
	Skipped  []string                   `json:"skipped,omitempty"`
	Message  string                     `json:"message"`
}

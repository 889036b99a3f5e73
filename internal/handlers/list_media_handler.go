package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	contentmodels "io.lumenworks.contenthub/internal/models/content"
	listmodels "io.lumenworks.contenthub/internal/models/list_media"
)

// ListMedia returns media assets, newest first, optionally filtered by media type
func (h *MediaHandler) ListMedia(c *gin.Context) {
	ctx := context.Background()

	query := `
		SELECT id, title, filename, media_type, COALESCE(linked_type, ''), COALESCE(linked_id, ''), uploaded_at
		FROM media
		ORDER BY uploaded_at DESC
	`
	args := []interface{}{}
	if mediaType := c.Query("media_type"); mediaType == "image" || mediaType == "video" {
		query = `
			SELECT id, title, filename, media_type, COALESCE(linked_type, ''), COALESCE(linked_id, ''), uploaded_at
			FROM media
			WHERE media_type = $1
			ORDER BY uploaded_at DESC
		`
		args = append(args, mediaType)
	}

	rows, err := h.postgres.Query(ctx, query, args...)
	if err != nil {
		h.logError(c, err, "failed to list media")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list media"})
		return
	}
	defer rows.Close()

	media := []contentmodels.MediaAsset{}
	for rows.Next() {
		var asset contentmodels.MediaAsset
		if err := rows.Scan(&asset.ID, &asset.Title, &asset.Filename, &asset.MediaType, &asset.LinkedType, &asset.LinkedID, &asset.UploadedAt); err != nil {
			h.logError(c, err, "failed to scan media")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list media"})
			return
		}
		asset.URL = "/uploads/" + asset.Filename
		media = append(media, asset)
	}

	c.JSON(http.StatusOK, listmodels.ListMediaResponse{Media: media, Total: len(media)})
}

package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// DeleteMedia removes a media record and its file on disk
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	mediaID := c.Param("id")
	if mediaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Media ID is required"})
		return
	}

	ctx := context.Background()

	var filename string
	err := h.postgres.QueryRow(ctx, `SELECT filename FROM media WHERE id = $1`, mediaID).Scan(&filename)
	if err != nil {
		if err == pgx.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		h.logError(c, err, "failed to load media", "media_id", mediaID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}

	if _, err := h.postgres.Exec(ctx, `DELETE FROM media WHERE id = $1`, mediaID); err != nil {
		h.logError(c, err, "failed to delete media record", "media_id", mediaID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}

	// Missing files are not an error; the record is the source of truth
	if err := os.Remove(filepath.Join(h.uploadDir, filename)); err != nil && !os.IsNotExist(err) {
		h.logError(c, err, "failed to remove media file", "filename", filename)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media deleted"})
}

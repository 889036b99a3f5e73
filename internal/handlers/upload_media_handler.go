package handlers

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	contentmodels "io.lumenworks.contenthub/internal/models/content"
	uploadmodels "io.lumenworks.contenthub/internal/models/upload_media"
)

type MediaHandler struct {
	postgres  *pgxpool.Pool
	redis     *redis.Client
	logger    *zap.SugaredLogger
	uploadDir string
}

// NewMediaHandler creates a new media handler storing files under uploadDir
func NewMediaHandler(postgres *pgxpool.Pool, redis *redis.Client, logger *zap.SugaredLogger, uploadDir string) *MediaHandler {
	return &MediaHandler{
		postgres:  postgres,
		redis:     redis,
		logger:    logger,
		uploadDir: uploadDir,
	}
}

// UploadMedia accepts multipart uploads under the "media_files" field. Files
// with unsupported extensions are reported in the skipped list rather than
// failing the whole request.
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	files := form.File["media_files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
		return
	}

	linkedType := c.PostForm("linked_type")
	if linkedType != "event" && linkedType != "post" {
		linkedType = ""
	}
	linkedID := c.PostForm("linked_id")

	ctx := context.Background()

	uploaded := []contentmodels.MediaAsset{}
	skipped := []string{}

	for _, file := range files {
		mediaType, ok := allowedFile(file.Filename)
		if !ok {
			skipped = append(skipped, file.Filename)
			continue
		}

		mediaID := uuid.New().String()
		filename := mediaID + "_" + sanitizeFilename(file.Filename)
		destination := filepath.Join(h.uploadDir, filename)

		if err := c.SaveUploadedFile(file, destination); err != nil {
			h.logError(c, err, "failed to save uploaded file", "filename", file.Filename)
			skipped = append(skipped, file.Filename)
			continue
		}

		title := c.PostForm("title")
		if title == "" {
			title = strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
		}

		now := time.Now()
		query := `
			INSERT INTO media (id, title, filename, media_type, linked_type, linked_id, uploaded_at)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)
		`
		if _, err := h.postgres.Exec(ctx, query, mediaID, title, filename, mediaType, linkedType, linkedID, now); err != nil {
			h.logError(c, err, "failed to insert media record", "filename", filename)
			skipped = append(skipped, file.Filename)
			continue
		}

		uploaded = append(uploaded, contentmodels.MediaAsset{
			ID:         mediaID,
			Title:      title,
			Filename:   filename,
			MediaType:  mediaType,
			LinkedType: linkedType,
			LinkedID:   linkedID,
			UploadedAt: now,
		})
	}

	status := http.StatusCreated
	if len(uploaded) == 0 {
		status = http.StatusBadRequest
	}

	c.JSON(status, uploadmodels.UploadMediaResponse{
		Uploaded: uploaded,
		Skipped:  skipped,
		Message:  "Upload processed",
	})
}

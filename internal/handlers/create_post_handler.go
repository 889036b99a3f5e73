package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	contentmodels "io.lumenworks.contenthub/internal/models/content"
	createmodels "io.lumenworks.contenthub/internal/models/create_post"
)

type PostHandler struct {
	postgres *pgxpool.Pool
	redis    *redis.Client
	logger   *zap.SugaredLogger
}

// NewPostHandler creates a new post handler
func NewPostHandler(postgres *pgxpool.Pool, redis *redis.Client, logger *zap.SugaredLogger) *PostHandler {
	return &PostHandler{
		postgres: postgres,
		redis:    redis,
		logger:   logger,
	}
}

// CreatePost handles creation of new blog posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req createmodels.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Title == "" || req.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and body are required"})
		return
	}

	publishedAt := time.Now()
	if parsed, ok := parseContentDate(req.PublishedAt); ok {
		publishedAt = parsed
	}

	ctx := context.Background()

	postID := uuid.New().String()
	now := time.Now()

	tx, err := h.postgres.Begin(ctx)
	if err != nil {
		h.logError(c, err, "failed to begin transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	defer tx.Rollback(ctx)

	postQuery := `
		INSERT INTO posts (id, title, body, published_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.Exec(ctx, postQuery, postID, req.Title, req.Body, publishedAt, now)
	if err != nil {
		h.logError(c, err, "failed to insert post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	categories, err := attachCategories(ctx, tx, "post", "post_categories", "post_id", postID, req.Categories)
	if err != nil {
		h.logError(c, err, "failed to attach categories", "post_id", postID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	tags, err := attachTags(ctx, tx, postID, req.Tags)
	if err != nil {
		h.logError(c, err, "failed to attach tags", "post_id", postID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	if err = tx.Commit(ctx); err != nil {
		h.logError(c, err, "failed to commit post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	post := contentmodels.Post{
		ID:          postID,
		Title:       req.Title,
		Body:        req.Body,
		PublishedAt: publishedAt,
		Categories:  categories,
		Tags:        tags,
		CreatedAt:   now,
	}

	if postJSON, err := json.Marshal(post); err == nil {
		h.redis.Set(ctx, "post:"+postID, postJSON, 24*time.Hour)
	}

	c.JSON(http.StatusCreated, createmodels.CreatePostResponse{
		Post:    post,
		Message: "Post created successfully",
	})
}

// attachTags inserts post tags, skipping blanks and duplicates.
func attachTags(ctx context.Context, tx pgx.Tx, postID string, tags []string) ([]string, error) {
	attached := []string{}
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO post_tags (post_id, tag) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			postID, tag,
		)
		if err != nil {
			return nil, err
		}
		attached = append(attached, tag)
	}
	return attached, nil
}

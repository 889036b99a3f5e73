package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	contentmodels "io.lumenworks.contenthub/internal/models/content"
)

type CategoryHandler struct {
	postgres *pgxpool.Pool
	redis    *redis.Client
	logger   *zap.SugaredLogger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(postgres *pgxpool.Pool, redis *redis.Client, logger *zap.SugaredLogger) *CategoryHandler {
	return &CategoryHandler{
		postgres: postgres,
		redis:    redis,
		logger:   logger,
	}
}

// ListCategories returns categories, newest first, optionally restricted to
// one content type
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	ctx := context.Background()

	query := `SELECT id, name, content_type, created_at FROM categories ORDER BY created_at DESC`
	args := []interface{}{}
	if contentType := c.Query("content_type"); contentType == "event" || contentType == "post" {
		query = `SELECT id, name, content_type, created_at FROM categories WHERE content_type = $1 ORDER BY created_at DESC`
		args = append(args, contentType)
	}

	rows, err := h.postgres.Query(ctx, query, args...)
	if err != nil {
		h.logError(c, err, "failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}
	defer rows.Close()

	categories := []contentmodels.Category{}
	for rows.Next() {
		var category contentmodels.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.ContentType, &category.CreatedAt); err != nil {
			h.logError(c, err, "failed to scan category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
			return
		}
		categories = append(categories, category)
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories, "total": len(categories)})
}

// CreateCategory adds a category for events or posts
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		ContentType string `json:"contentType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}
	if req.ContentType != "event" && req.ContentType != "post" {
		req.ContentType = "event"
	}

	ctx := context.Background()
	categoryID := uuid.New().String()

	query := `INSERT INTO categories (id, name, content_type) VALUES ($1, $2, $3)`
	if _, err := h.postgres.Exec(ctx, query, categoryID, req.Name, req.ContentType); err != nil {
		// Unique violation on the name is the common failure here
		c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category added", "id": categoryID})
}

// DeleteCategory removes a category; links from events and posts cascade
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID := c.Param("id")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category ID is required"})
		return
	}

	ctx := context.Background()

	tag, err := h.postgres.Exec(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		h.logError(c, err, "failed to delete category", "category_id", categoryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

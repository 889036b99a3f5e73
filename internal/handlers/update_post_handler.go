package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	updatemodels "io.lumenworks.contenthub/internal/models/update_post"
)

// UpdatePost handles partial updates of an existing post
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID := c.Param("id")
	if postID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post ID is required"})
		return
	}

	var req updatemodels.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx := context.Background()

	var title, body string
	var publishedAt time.Time
	query := `SELECT title, body, published_at FROM posts WHERE id = $1`
	err := h.postgres.QueryRow(ctx, query, postID).Scan(&title, &body, &publishedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logError(c, err, "failed to load post", "post_id", postID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	if req.Title != nil && *req.Title != "" {
		title = *req.Title
	}
	if req.Body != nil && *req.Body != "" {
		body = *req.Body
	}
	if req.PublishedAt != nil {
		if parsed, ok := parseContentDate(*req.PublishedAt); ok {
			publishedAt = parsed
		}
	}

	tx, err := h.postgres.Begin(ctx)
	if err != nil {
		h.logError(c, err, "failed to begin transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	defer tx.Rollback(ctx)

	updateQuery := `UPDATE posts SET title = $1, body = $2, published_at = $3 WHERE id = $4`
	if _, err := tx.Exec(ctx, updateQuery, title, body, publishedAt, postID); err != nil {
		h.logError(c, err, "failed to update post", "post_id", postID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	if req.Categories != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM post_categories WHERE post_id = $1`, postID); err != nil {
			h.logError(c, err, "failed to clear categories", "post_id", postID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
			return
		}
		if _, err := attachCategories(ctx, tx, "post", "post_categories", "post_id", postID, *req.Categories); err != nil {
			h.logError(c, err, "failed to attach categories", "post_id", postID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
			return
		}
	}

	if req.Tags != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM post_tags WHERE post_id = $1`, postID); err != nil {
			h.logError(c, err, "failed to clear tags", "post_id", postID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
			return
		}
		if _, err := attachTags(ctx, tx, postID, *req.Tags); err != nil {
			h.logError(c, err, "failed to attach tags", "post_id", postID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
			return
		}
	}

	if err = tx.Commit(ctx); err != nil {
		h.logError(c, err, "failed to commit post update", "post_id", postID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	h.redis.Del(ctx, "post:"+postID)

	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully", "id": postID})
}

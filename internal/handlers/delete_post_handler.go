package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DeletePost removes a post along with its category links and tags
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")
	if postID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post ID is required"})
		return
	}

	ctx := context.Background()

	tag, err := h.postgres.Exec(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		h.logError(c, err, "failed to delete post", "post_id", postID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	h.redis.Del(ctx, "post:"+postID)

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

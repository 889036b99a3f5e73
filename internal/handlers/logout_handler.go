package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Logout revokes the presented session token
func (h *AuthHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token is required"})
		return
	}

	ctx := context.Background()

	if _, err := h.postgres.Exec(ctx, `DELETE FROM admin_sessions WHERE token = $1`, token); err != nil {
		h.logError(c, err, "failed to delete session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	h.redis.Del(ctx, "admin_session:"+token)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

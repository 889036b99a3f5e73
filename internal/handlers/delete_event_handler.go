package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DeleteEvent removes an event and its category links
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event ID is required"})
		return
	}

	ctx := context.Background()

	tag, err := h.postgres.Exec(ctx, `DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		h.logError(c, err, "failed to delete event", "event_id", eventID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	h.redis.Del(ctx, "event:"+eventID)

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

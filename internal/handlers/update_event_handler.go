package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	updatemodels "io.lumenworks.contenthub/internal/models/update_event"
)

// UpdateEvent handles partial updates of an existing event
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event ID is required"})
		return
	}

	var req updatemodels.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx := context.Background()

	var title, description, language string
	var eventDate time.Time
	query := `SELECT title, description, event_date, language FROM events WHERE id = $1`
	err := h.postgres.QueryRow(ctx, query, eventID).Scan(&title, &description, &eventDate, &language)
	if err != nil {
		if err == pgx.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		h.logError(c, err, "failed to load event", "event_id", eventID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	// Missing fields keep their stored values
	if req.Title != nil && *req.Title != "" {
		title = *req.Title
	}
	if req.Description != nil && *req.Description != "" {
		description = *req.Description
	}
	if req.Language != nil && *req.Language != "" {
		language = *req.Language
	}
	if req.EventDate != nil {
		if parsed, ok := parseContentDate(*req.EventDate); ok {
			eventDate = parsed
		}
	}

	tx, err := h.postgres.Begin(ctx)
	if err != nil {
		h.logError(c, err, "failed to begin transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	defer tx.Rollback(ctx)

	updateQuery := `
		UPDATE events SET title = $1, description = $2, event_date = $3, language = $4
		WHERE id = $5
	`
	if _, err := tx.Exec(ctx, updateQuery, title, description, eventDate, language, eventID); err != nil {
		h.logError(c, err, "failed to update event", "event_id", eventID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	// Replace category links when the request names a new set
	if req.Categories != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM event_categories WHERE event_id = $1`, eventID); err != nil {
			h.logError(c, err, "failed to clear categories", "event_id", eventID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
			return
		}
		if _, err := attachCategories(ctx, tx, "event", "event_categories", "event_id", eventID, *req.Categories); err != nil {
			h.logError(c, err, "failed to attach categories", "event_id", eventID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
			return
		}
	}

	if err = tx.Commit(ctx); err != nil {
		h.logError(c, err, "failed to commit event update", "event_id", eventID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	// Invalidate the cached copy
	h.redis.Del(ctx, "event:"+eventID)

	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully", "id": eventID})
}

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
	createmodels "io.lumenworks.contenthub/internal/models/create_event"
)

type EventHandler struct {
	postgres *pgxpool.Pool
	redis    *redis.Client
	logger   *zap.SugaredLogger
}

// NewEventHandler creates a new event handler
func NewEventHandler(postgres *pgxpool.Pool, redis *redis.Client, logger *zap.SugaredLogger) *EventHandler {
	return &EventHandler{
		postgres: postgres,
		redis:    redis,
		logger:   logger,
	}
}

// CreateEvent handles creation of new events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req createmodels.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// Validate required fields
	if req.Title == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, description, and date are required"})
		return
	}
	eventDate, ok := parseContentDate(req.EventDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, description, and date are required"})
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	ctx := context.Background()

	eventID := uuid.New().String()
	now := time.Now()

	// Start database transaction
	tx, err := h.postgres.Begin(ctx)
	if err != nil {
		h.logError(c, err, "failed to begin transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	defer tx.Rollback(ctx)

	eventQuery := `
		INSERT INTO events (id, title, description, event_date, language, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.Exec(ctx, eventQuery, eventID, req.Title, req.Description, eventDate, language, now)
	if err != nil {
		h.logError(c, err, "failed to insert event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	categories, err := attachCategories(ctx, tx, "event", "event_categories", "event_id", eventID, req.Categories)
	if err != nil {
		h.logError(c, err, "failed to attach categories", "event_id", eventID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	if err = tx.Commit(ctx); err != nil {
		h.logError(c, err, "failed to commit event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	event := contentmodels.Event{
		ID:          eventID,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		Language:    language,
		Categories:  categories,
		CreatedAt:   now,
	}

	// Cache the event; readers fall back to Postgres on a miss
	if eventJSON, err := json.Marshal(event); err == nil {
		h.redis.Set(ctx, "event:"+eventID, eventJSON, 24*time.Hour)
	}

	c.JSON(http.StatusCreated, createmodels.CreateEventResponse{
		Event:   event,
		Message: "Event created successfully",
	})
}

// attachCategories links existing categories of the given content type to a
// row in one of the join tables. Unknown category names are skipped, the
// way the original dashboard ignored stale form selections.
func attachCategories(ctx context.Context, tx pgx.Tx, contentType, joinTable, ownerColumn, ownerID string, names []string) ([]string, error) {
	attached := []string{}
	for _, name := range names {
		var categoryID string
		err := tx.QueryRow(ctx,
			`SELECT id FROM categories WHERE name = $1 AND content_type = $2`,
			name, contentType,
		).Scan(&categoryID)
		if err != nil {
			if err == pgx.ErrNoRows {
				continue
			}
			return nil, err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO `+joinTable+` (`+ownerColumn+`, category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			ownerID, categoryID,
		)
		if err != nil {
			return nil, err
		}
		attached = append(attached, name)
	}
	return attached, nil
}

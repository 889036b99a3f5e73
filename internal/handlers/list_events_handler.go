package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	contentmodels "io.lumenworks.contenthub/internal/models/content"
	listmodels "io.lumenworks.contenthub/internal/models/list_events"
)

// ListEvents returns events for the dashboard, newest event date first,
// with the original list filters: title keyword, category name, and an
// exact event day. A malformed date is ignored rather than rejected.
func (h *EventHandler) ListEvents(c *gin.Context) {
	ctx := context.Background()

	whereConditions := []string{"1=1"}
	args := []interface{}{}
	argCounter := 1

	if keyword := strings.TrimSpace(c.Query("keyword")); keyword != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("e.title ILIKE $%d", argCounter))
		args = append(args, "%"+keyword+"%")
		argCounter++
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		whereConditions = append(whereConditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM event_categories ec
			JOIN categories cat ON cat.id = ec.category_id
			WHERE ec.event_id = e.id AND cat.name = $%d
		)`, argCounter))
		args = append(args, category)
		argCounter++
	}
	if date, ok := parseContentDate(c.Query("date")); ok {
		whereConditions = append(whereConditions, fmt.Sprintf("DATE(e.event_date) = $%d", argCounter))
		args = append(args, date)
		argCounter++
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.title, e.description, e.event_date, e.language, e.created_at
		FROM events e
		WHERE %s
		ORDER BY e.event_date DESC
	`, strings.Join(whereConditions, " AND "))

	rows, err := h.postgres.Query(ctx, query, args...)
	if err != nil {
		h.logError(c, err, "failed to list events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	defer rows.Close()

	var eventIDs []string
	eventMap := make(map[string]*contentmodels.Event)
	var events []contentmodels.Event

	for rows.Next() {
		var event contentmodels.Event
		if err := rows.Scan(&event.ID, &event.Title, &event.Description, &event.EventDate, &event.Language, &event.CreatedAt); err != nil {
			h.logError(c, err, "failed to scan event")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
			return
		}
		event.Categories = []string{}
		events = append(events, event)
		eventIDs = append(eventIDs, event.ID)
	}
	for i := range events {
		eventMap[events[i].ID] = &events[i]
	}

	if len(eventIDs) > 0 {
		if err := fetchCategoriesFor(ctx, h.postgres, "event_categories", "event_id", eventIDs, func(id, name string) {
			if event, exists := eventMap[id]; exists {
				event.Categories = append(event.Categories, name)
			}
		}); err != nil {
			h.logError(c, err, "failed to fetch event categories")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
			return
		}
	}

	if events == nil {
		events = []contentmodels.Event{}
	}
	c.JSON(http.StatusOK, listmodels.ListEventsResponse{Events: events, Total: len(events)})
}

// fetchCategoriesFor loads category names for a batch of owner rows from
// one of the join tables and hands each pair to assign.
func fetchCategoriesFor(ctx context.Context, pool *pgxpool.Pool, joinTable, ownerColumn string, ownerIDs []string, assign func(id, name string)) error {
	placeholders := make([]string, len(ownerIDs))
	args := make([]interface{}, len(ownerIDs))
	for i, id := range ownerIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT j.%s, c.name
		FROM %s j
		JOIN categories c ON c.id = j.category_id
		WHERE j.%s IN (%s)
		ORDER BY c.name
	`, ownerColumn, joinTable, ownerColumn, strings.Join(placeholders, ","))

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to fetch categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ownerID, name string
		if err := rows.Scan(&ownerID, &name); err != nil {
			return fmt.Errorf("failed to scan category: %w", err)
		}
		assign(ownerID, name)
	}
	return rows.Err()
}

package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	dashmodels "io.lumenworks.contenthub/internal/models/dashboard"
)

// DashboardStats returns content counts and the five most popular pages
func (h *AnalyticsHandler) DashboardStats(c *gin.Context) {
	ctx := context.Background()

	var stats dashmodels.Stats
	countQuery := `
		SELECT
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM posts),
			(SELECT COUNT(*) FROM media),
			(SELECT COUNT(*) FROM categories)
	`
	err := h.postgres.QueryRow(ctx, countQuery).Scan(&stats.Events, &stats.Posts, &stats.Media, &stats.Categories)
	if err != nil {
		h.logError(c, err, "failed to load dashboard counts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	rows, err := h.postgres.Query(ctx, `
		SELECT page, views, popularity_score
		FROM analytics
		ORDER BY popularity_score DESC
		LIMIT 5
	`)
	if err != nil {
		h.logError(c, err, "failed to load top pages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	defer rows.Close()

	topPages := []dashmodels.PageStat{}
	for rows.Next() {
		var stat dashmodels.PageStat
		if err := rows.Scan(&stat.Page, &stat.Views, &stat.PopularityScore); err != nil {
			h.logError(c, err, "failed to scan page stat")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		topPages = append(topPages, stat)
	}

	c.JSON(http.StatusOK, dashmodels.DashboardResponse{
		Stats:    stats,
		TopPages: topPages,
	})
}

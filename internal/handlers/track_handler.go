package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	trackmodels "io.lumenworks.contenthub/internal/models/track"
)

type AnalyticsHandler struct {
	postgres *pgxpool.Pool
	redis    *redis.Client
	cron     *cron.Cron
	logger   *zap.SugaredLogger
}

// NewAnalyticsHandler creates the analytics handler and starts the hourly
// rollup of redis counters into the analytics table.
func NewAnalyticsHandler(postgres *pgxpool.Pool, redisClient *redis.Client, logger *zap.SugaredLogger) *AnalyticsHandler {
	h := &AnalyticsHandler{
		postgres: postgres,
		redis:    redisClient,
		cron:     cron.New(),
		logger:   logger,
	}

	h.cron.AddFunc("@hourly", func() {
		if err := h.FlushCounters(context.Background()); err != nil {
			logger.Errorw("analytics rollup failed", "error", err)
		}
	})
	h.cron.Start()

	return h
}

// Stop halts the rollup scheduler. Used during shutdown.
func (h *AnalyticsHandler) Stop() {
	h.cron.Stop()
}

// Track records a page interaction. Views bump a counter; every interaction
// adds to the page's popularity score. Counters live in redis until the
// hourly rollup persists them.
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req trackmodels.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	req.Page = strings.TrimSpace(req.Page)
	if req.Page == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Page is required"})
		return
	}
	if req.Interaction == "" {
		req.Interaction = "view"
	}
	if req.Score <= 0 {
		req.Score = 0.5
	}

	ctx := context.Background()

	if req.Interaction == "view" {
		if err := h.redis.Incr(ctx, "views:"+req.Page).Err(); err != nil {
			h.logError(c, err, "failed to bump view counter", "page", req.Page)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track interaction"})
			return
		}
	}
	if err := h.redis.IncrByFloat(ctx, "pop:"+req.Page, req.Score).Err(); err != nil {
		h.logError(c, err, "failed to bump popularity score", "page", req.Page)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track interaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tracked"})
}

// FlushCounters drains the redis view and popularity counters into the
// analytics table. Each counter is deleted after its value is applied.
func (h *AnalyticsHandler) FlushCounters(ctx context.Context) error {
	viewKeys, err := h.redis.Keys(ctx, "views:*").Result()
	if err != nil {
		return err
	}
	for _, key := range viewKeys {
		count, err := h.redis.GetDel(ctx, key).Int64()
		if err != nil {
			continue
		}
		page := strings.TrimPrefix(key, "views:")
		query := `
			INSERT INTO analytics (page, views) VALUES ($1, $2)
			ON CONFLICT (page) DO UPDATE SET views = analytics.views + EXCLUDED.views, updated_at = NOW()
		`
		if _, err := h.postgres.Exec(ctx, query, page, count); err != nil {
			return err
		}
	}

	popKeys, err := h.redis.Keys(ctx, "pop:*").Result()
	if err != nil {
		return err
	}
	for _, key := range popKeys {
		score, err := h.redis.GetDel(ctx, key).Float64()
		if err != nil {
			continue
		}
		page := strings.TrimPrefix(key, "pop:")
		query := `
			INSERT INTO analytics (page, popularity_score) VALUES ($1, $2)
			ON CONFLICT (page) DO UPDATE SET popularity_score = analytics.popularity_score + EXCLUDED.popularity_score, updated_at = NOW()
		`
		if _, err := h.postgres.Exec(ctx, query, page, score); err != nil {
			return err
		}
	}

	return nil
}

package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.lumenworks.contenthub/internal/search"
)

type SearchHandler struct {
	service      *search.Service
	autocomplete *search.Autocomplete
	logger       *zap.SugaredLogger
}

// NewSearchHandler creates the handler backing the public search endpoints
func NewSearchHandler(store search.ContentStore, logger *zap.SugaredLogger) *SearchHandler {
	return &SearchHandler{
		service:      search.NewService(store),
		autocomplete: search.NewAutocomplete(store),
		logger:       logger,
	}
}

// Search handles GET /search: keyword + filters + pagination across events,
// posts, and media. Malformed optional parameters are coerced to defaults;
// only a store failure produces an error response, so clients can tell "no
// results" from "search failed".
func (h *SearchHandler) Search(c *gin.Context) {
	params := c.Request.URL.Query()
	filters := search.ParseFilterSet(params)
	page := search.ParsePage(params)

	ctx := context.Background()

	result, err := h.service.Search(ctx, filters, page)
	if err != nil {
		h.logError(c, err, "search failed", "keyword", filters.RawKeyword)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

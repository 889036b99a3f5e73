package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Autocomplete handles GET /search/autocomplete, returning up to ten title
// suggestions for the typed prefix. An empty query is a valid request with
// an empty suggestion list, not an error.
func (h *SearchHandler) Autocomplete(c *gin.Context) {
	ctx := context.Background()

	suggestions, err := h.autocomplete.Suggest(ctx, c.Query("q"))
	if err != nil {
		h.logError(c, err, "autocomplete failed", "query", c.Query("q"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Autocomplete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

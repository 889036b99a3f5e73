package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"io.lumenworks.contenthub/internal/search"
)

type stubStore struct {
	items  map[search.ContentType][]search.SearchableItem
	titles map[search.ContentType][]string
	err    error
}

func (s *stubStore) Items(_ context.Context, t search.ContentType, _ search.Predicate) ([]search.SearchableItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items[t], nil
}

func (s *stubStore) Titles(_ context.Context, t search.ContentType) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.titles[t], nil
}

func newSearchRouter(store search.ContentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSearchHandler(store, nil)
	router := gin.New()
	router.GET("/search", h.Search)
	router.GET("/search/autocomplete", h.Autocomplete)
	return router
}

func performRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestSearchEndpointContract(t *testing.T) {
	store := &stubStore{
		items: map[search.ContentType][]search.SearchableItem{
			search.TypeEvent: {
				{ID: "e1", ContentType: search.TypeEvent, Title: "Harvest Festival"},
			},
			search.TypePost: {
				{ID: "p1", ContentType: search.TypePost, Title: "Harvest Recap"},
			},
		},
	}
	router := newSearchRouter(store)

	w := performRequest(router, "/search?q=harvest")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Results []map[string]interface{} `json:"results"`
		Total   int                      `json:"total"`
		HasNext bool                     `json:"has_next"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	assert.False(t, body.HasNext)
	require.Len(t, body.Results, 2)
	assert.Equal(t, "e1", body.Results[0]["id"])
	assert.Equal(t, "p1", body.Results[1]["id"])
}

func TestSearchEndpointIgnoresGarbledParams(t *testing.T) {
	items := make([]search.SearchableItem, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, search.SearchableItem{
			ID:          string(rune('a' + i)),
			ContentType: search.TypeEvent,
			Title:       "Event",
		})
	}
	router := newSearchRouter(&stubStore{
		items: map[search.ContentType][]search.SearchableItem{search.TypeEvent: items},
	})

	w := performRequest(router, "/search?page=abc&per_page=-5&sort=sideways&date_from=not-a-date")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Results []json.RawMessage `json:"results"`
		Total   int               `json:"total"`
		HasNext bool              `json:"has_next"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 20, body.Total)
	assert.Len(t, body.Results, search.DefaultPageSize)
	assert.True(t, body.HasNext)
}

func TestSearchEndpointStoreFailure(t *testing.T) {
	router := newSearchRouter(&stubStore{err: errors.New("connection refused")})

	w := performRequest(router, "/search?q=anything")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Search failed"}`, w.Body.String())
}

func TestAutocompleteEndpoint(t *testing.T) {
	router := newSearchRouter(&stubStore{
		titles: map[search.ContentType][]string{
			search.TypeEvent: {"Kigali Market", "Harvest Festival"},
			search.TypePost:  {"Kigali Market", "Kitchen Notes"},
		},
	})

	w := performRequest(router, "/search/autocomplete?q=ki")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Kigali Market", "Kitchen Notes"}, body.Suggestions)
}

func TestAutocompleteEndpointEmptyQuery(t *testing.T) {
	router := newSearchRouter(&stubStore{
		titles: map[search.ContentType][]string{
			search.TypeEvent: {"Kigali Market"},
		},
	})

	w := performRequest(router, "/search/autocomplete")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"suggestions": []}`, w.Body.String())
}

func TestAutocompleteEndpointStoreFailure(t *testing.T) {
	router := newSearchRouter(&stubStore{err: errors.New("connection refused")})

	w := performRequest(router, "/search/autocomplete?q=ki")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Autocomplete failed"}`, w.Body.String())
}

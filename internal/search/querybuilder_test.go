package search

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterSetDefaults(t *testing.T) {
	f := ParseFilterSet(url.Values{})

	assert.Empty(t, f.Keyword)
	assert.Empty(t, f.ContentType)
	assert.Nil(t, f.DateFrom)
	assert.Nil(t, f.DateTo)
	assert.Equal(t, SortRelevance, f.Sort)
}

func TestParseFilterSetKeywordNormalization(t *testing.T) {
	f := ParseFilterSet(url.Values{"q": {"  Music Night  "}})

	assert.Equal(t, "music night", f.Keyword)
	assert.Equal(t, "Music Night", f.RawKeyword)
}

func TestParseFilterSetBadDateIgnored(t *testing.T) {
	f := ParseFilterSet(url.Values{
		"date_from": {"not-a-date"},
		"date_to":   {"2024-13-45"},
	})

	assert.Nil(t, f.DateFrom)
	assert.Nil(t, f.DateTo)
}

func TestParseFilterSetDates(t *testing.T) {
	f := ParseFilterSet(url.Values{
		"date_from": {"2024-03-01"},
		"date_to":   {"2024-03-31"},
	})

	require.NotNil(t, f.DateFrom)
	require.NotNil(t, f.DateTo)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *f.DateFrom)
	// date_to covers the whole named day
	assert.True(t, f.DateTo.After(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)))
}

func TestParseFilterSetUnknownSortFallsBack(t *testing.T) {
	assert.Equal(t, SortRelevance, ParseFilterSet(url.Values{"sort": {"shiny"}}).Sort)
	assert.Equal(t, SortDateAsc, ParseFilterSet(url.Values{"sort": {"date_asc"}}).Sort)
	assert.Equal(t, SortDateDesc, ParseFilterSet(url.Values{"sort": {"date_desc"}}).Sort)
}

func TestParseFilterSetUnknownContentTypeIgnored(t *testing.T) {
	f := ParseFilterSet(url.Values{"content_type": {"podcast"}})
	assert.Empty(t, f.ContentType)

	f = ParseFilterSet(url.Values{"content_type": {"post"}})
	assert.Equal(t, TypePost, f.ContentType)
}

func TestParsePageDefaultsAndClamping(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Size: 12}, ParsePage(url.Values{}))
	assert.Equal(t, Page{Number: 1, Size: 12}, ParsePage(url.Values{"page": {"-3"}, "per_page": {"0"}}))
	assert.Equal(t, Page{Number: 1, Size: 12}, ParsePage(url.Values{"page": {"abc"}, "per_page": {"xyz"}}))
	assert.Equal(t, Page{Number: 4, Size: 48}, ParsePage(url.Values{"page": {"4"}, "per_page": {"500"}}))
	assert.Equal(t, Page{Number: 2, Size: 6}, ParsePage(url.Values{"page": {"2"}, "per_page": {"6"}}))
}

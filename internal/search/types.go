package search

import "time"

// ContentType identifies which kind of record a searchable item was
// projected from.
type ContentType string

const (
	TypeEvent ContentType = "event"
	TypePost  ContentType = "post"
	TypeMedia ContentType = "media"
)

// typePriority is the fixed merge order for cross-type results. Relevance
// sorting preserves this order; it is a deterministic tie-break, not a
// scoring function.
var typePriority = []ContentType{TypeEvent, TypePost, TypeMedia}

// SortOrder controls result ordering.
type SortOrder string

const (
	SortRelevance SortOrder = "relevance"
	SortDateAsc   SortOrder = "date_asc"
	SortDateDesc  SortOrder = "date_desc"
)

const (
	// DefaultPageSize is the page size used when per_page is absent or invalid.
	DefaultPageSize = 12
	// MaxPageSize caps client-supplied per_page values.
	MaxPageSize = 48
	// MaxSuggestions bounds autocomplete responses regardless of match count.
	MaxSuggestions = 10
)

// SearchableItem is the normalized projection of an event, post, or media
// asset. Items are produced at query time and never persisted.
type SearchableItem struct {
	ID          string      `json:"id"`
	ContentType ContentType `json:"content_type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Date        *time.Time  `json:"date,omitempty"`
	URL         string      `json:"url"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
}

// FilterSet holds the optional narrowing criteria for one search request.
// All fields combine with AND semantics; an empty FilterSet matches every
// item in the store.
type FilterSet struct {
	Keyword       string // casefolded for matching
	RawKeyword    string // as typed, for display/highlighting by callers
	ContentType   ContentType
	EventCategory string
	PostCategory  string
	PostTag       string
	MediaType     string
	DateFrom      *time.Time
	DateTo        *time.Time
	Sort          SortOrder
}

// Types returns the content types this filter set allows, in merge
// priority order.
func (f FilterSet) Types() []ContentType {
	if f.ContentType == "" {
		return typePriority
	}
	for _, t := range typePriority {
		if t == f.ContentType {
			return []ContentType{t}
		}
	}
	return nil
}

// Page is one fixed-size slice of the matched result sequence.
type Page struct {
	Number int
	Size   int
}

// Clamped returns the page with non-positive values raised to their
// minimum valid value. Malformed pagination input never fails a search.
func (p Page) Clamped() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset is the index of the first item on this page within the full
// matched sequence.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// ResultPage is a single page of search results plus the totals needed for
// pagination controls.
type ResultPage struct {
	Items   []SearchableItem `json:"results"`
	Total   int              `json:"total"`
	HasNext bool             `json:"has_next"`
}

// Predicate is the normalized per-type query description handed to the
// content store. Zero-valued fields match everything; keyword matching is
// not part of the predicate and happens in the service.
type Predicate struct {
	Category  string
	Tag       string
	MediaType string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// predicateFor projects the filter dimensions relevant to one content type.
func (f FilterSet) predicateFor(t ContentType) Predicate {
	p := Predicate{DateFrom: f.DateFrom, DateTo: f.DateTo}
	switch t {
	case TypeEvent:
		p.Category = f.EventCategory
	case TypePost:
		p.Category = f.PostCategory
		p.Tag = f.PostTag
	case TypeMedia:
		p.MediaType = f.MediaType
	}
	return p
}

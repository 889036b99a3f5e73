package search

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the accepted formats for date_from/date_to. Values that
// match none of them are treated as absent rather than rejected, so a typo
// in a date box degrades to an unfiltered search instead of an error.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseFilterSet coerces raw request parameters into a validated FilterSet.
// It never returns an error: unparsable values fall back to safe defaults.
func ParseFilterSet(params url.Values) FilterSet {
	raw := strings.TrimSpace(params.Get("q"))
	f := FilterSet{
		RawKeyword:    raw,
		Keyword:       strings.ToLower(raw),
		EventCategory: strings.TrimSpace(params.Get("event_category")),
		PostCategory:  strings.TrimSpace(params.Get("post_category")),
		PostTag:       strings.TrimSpace(params.Get("post_tag")),
		MediaType:     strings.TrimSpace(params.Get("media_type")),
		Sort:          parseSort(params.Get("sort")),
	}

	switch ContentType(params.Get("content_type")) {
	case TypeEvent, TypePost, TypeMedia:
		f.ContentType = ContentType(params.Get("content_type"))
	}

	if from, ok := parseDate(params.Get("date_from")); ok {
		f.DateFrom = &from
	}
	if to, ok := parseDate(params.Get("date_to")); ok {
		// A date-only upper bound names a whole day, so push it to the
		// last instant of that day.
		if len(params.Get("date_to")) == len("2006-01-02") {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		f.DateTo = &to
	}

	return f
}

// ParsePage coerces page/per_page parameters, clamping anything malformed
// or out of range to valid values.
func ParsePage(params url.Values) Page {
	p := Page{Number: 1, Size: DefaultPageSize}
	if n, err := strconv.Atoi(params.Get("page")); err == nil {
		p.Number = n
	}
	if n, err := strconv.Atoi(params.Get("per_page")); err == nil {
		p.Size = n
	}
	return p.Clamped()
}

func parseSort(raw string) SortOrder {
	switch SortOrder(strings.TrimSpace(raw)) {
	case SortDateAsc:
		return SortDateAsc
	case SortDateDesc:
		return SortDateDesc
	default:
		return SortRelevance
	}
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

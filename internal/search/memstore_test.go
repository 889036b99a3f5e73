package search

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// memStore is an in-memory ContentStore used by the package tests. It
// applies predicates the same way the SQL store does and preserves
// insertion order.
type memStore struct {
	items map[ContentType][]SearchableItem
	fail  map[ContentType]bool
}

var errStoreDown = errors.New("store unavailable")

func newMemStore() *memStore {
	return &memStore{
		items: make(map[ContentType][]SearchableItem),
		fail:  make(map[ContentType]bool),
	}
}

func (m *memStore) add(item SearchableItem) {
	m.items[item.ContentType] = append(m.items[item.ContentType], item)
}

func (m *memStore) Items(_ context.Context, t ContentType, pred Predicate) ([]SearchableItem, error) {
	if m.fail[t] {
		return nil, errStoreDown
	}
	var out []SearchableItem
	for _, item := range m.items[t] {
		if pred.Category != "" && item.Category != pred.Category {
			continue
		}
		if pred.Tag != "" && !containsTag(item.Tags, pred.Tag) {
			continue
		}
		if pred.MediaType != "" && item.Category != pred.MediaType {
			continue
		}
		if pred.DateFrom != nil && (item.Date == nil || item.Date.Before(*pred.DateFrom)) {
			continue
		}
		if pred.DateTo != nil && (item.Date == nil || item.Date.After(*pred.DateTo)) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (m *memStore) Titles(_ context.Context, t ContentType) ([]string, error) {
	if m.fail[t] {
		return nil, errStoreDown
	}
	var titles []string
	for _, item := range m.items[t] {
		titles = append(titles, item.Title)
	}
	return titles, nil
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func eventItem(n int, title string, date time.Time) SearchableItem {
	return SearchableItem{
		ID:          fmt.Sprintf("event-%d", n),
		ContentType: TypeEvent,
		Title:       title,
		Description: "event description",
		Date:        &date,
		URL:         fmt.Sprintf("/events/event-%d", n),
	}
}

func postItem(n int, title string, date time.Time, tags ...string) SearchableItem {
	return SearchableItem{
		ID:          fmt.Sprintf("post-%d", n),
		ContentType: TypePost,
		Title:       title,
		Description: "post body",
		Tags:        tags,
		Date:        &date,
		URL:         fmt.Sprintf("/blog/post-%d", n),
	}
}

func mediaItem(n int, title string) SearchableItem {
	return SearchableItem{
		ID:          fmt.Sprintf("media-%d", n),
		ContentType: TypeMedia,
		Title:       title,
		Category:    "image",
		URL:         fmt.Sprintf("/uploads/media-%d.jpg", n),
	}
}

package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Service runs cross-entity content searches. It is stateless; every call
// reads the store fresh and never mutates it.
type Service struct {
	store ContentStore
}

func NewService(store ContentStore) *Service {
	return &Service{store: store}
}

// Search returns one page of items matching the filter set, along with the
// total match count and whether a further page exists.
//
// If any per-type store query fails the whole search fails; merging the
// successful subset would make total and has_next silently under-report.
func (s *Service) Search(ctx context.Context, filters FilterSet, page Page) (*ResultPage, error) {
	page = page.Clamped()

	var merged []SearchableItem
	for _, t := range filters.Types() {
		items, err := s.store.Items(ctx, t, filters.predicateFor(t))
		if err != nil {
			return nil, fmt.Errorf("searching %s content: %w", t, err)
		}
		merged = append(merged, items...)
	}

	if filters.Keyword != "" {
		merged = filterByKeyword(merged, filters.Keyword)
	}

	sortItems(merged, filters.Sort)

	total := len(merged)
	result := &ResultPage{
		Items:   pageSlice(merged, page),
		Total:   total,
		HasNext: total > page.Number*page.Size,
	}
	return result, nil
}

// filterByKeyword keeps items whose title or description contains the
// casefolded keyword. Plain substring containment: no tokenizing, no
// stemming.
func filterByKeyword(items []SearchableItem, keyword string) []SearchableItem {
	matched := items[:0]
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), keyword) ||
			strings.Contains(strings.ToLower(item.Description), keyword) {
			matched = append(matched, item)
		}
	}
	return matched
}

// sortItems orders the merged sequence. Relevance keeps the merge order as
// delivered by the store. Date sorts are stable, and items without a date
// always land after every dated item regardless of direction.
func sortItems(items []SearchableItem, order SortOrder) {
	switch order {
	case SortDateAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return dateLess(items[i], items[j], false)
		})
	case SortDateDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return dateLess(items[i], items[j], true)
		})
	}
}

func dateLess(a, b SearchableItem, desc bool) bool {
	switch {
	case a.Date == nil && b.Date == nil:
		return false
	case a.Date == nil:
		return false
	case b.Date == nil:
		return true
	}
	if desc {
		return a.Date.After(*b.Date)
	}
	return a.Date.Before(*b.Date)
}

func pageSlice(items []SearchableItem, page Page) []SearchableItem {
	start := page.Offset()
	if start >= len(items) {
		return []SearchableItem{}
	}
	end := start + page.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

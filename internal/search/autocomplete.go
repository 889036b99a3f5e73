package search

import (
	"context"
	"fmt"
	"strings"
)

// Autocomplete derives bounded title suggestions from the same content the
// search service queries.
type Autocomplete struct {
	store ContentStore
}

func NewAutocomplete(store ContentStore) *Autocomplete {
	return &Autocomplete{store: store}
}

// Suggest returns up to MaxSuggestions titles containing the query as a
// case-insensitive substring, deduplicated, in first-seen order across the
// fixed type priority. An empty or whitespace-only query yields no
// suggestions.
func (a *Autocomplete) Suggest(ctx context.Context, query string) ([]string, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []string{}, nil
	}

	suggestions := []string{}
	seen := make(map[string]struct{})
	for _, t := range typePriority {
		titles, err := a.store.Titles(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("loading %s titles: %w", t, err)
		}
		for _, title := range titles {
			if !strings.Contains(strings.ToLower(title), needle) {
				continue
			}
			if _, ok := seen[title]; ok {
				continue
			}
			seen[title] = struct{}{}
			suggestions = append(suggestions, title)
			if len(suggestions) == MaxSuggestions {
				return suggestions, nil
			}
		}
	}
	return suggestions, nil
}

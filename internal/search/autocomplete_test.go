package search

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestEmptyQuery(t *testing.T) {
	store := newMemStore()
	store.add(eventItem(1, "Kirundi Workshop", time.Now()))
	ac := NewAutocomplete(store)

	for _, q := range []string{"", "   ", "\t"} {
		suggestions, err := ac.Suggest(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, suggestions)
		assert.NotNil(t, suggestions)
	}
}

func TestSuggestSubstringMatch(t *testing.T) {
	store := newMemStore()
	store.add(eventItem(1, "Kirundi Workshop", time.Now()))
	store.add(eventItem(2, "Kigali Market", time.Now()))
	store.add(eventItem(3, "Other", time.Now()))

	suggestions, err := NewAutocomplete(store).Suggest(context.Background(), "ki")
	require.NoError(t, err)
	assert.Equal(t, []string{"Kirundi Workshop", "Kigali Market"}, suggestions)
}

func TestSuggestCaseInsensitive(t *testing.T) {
	store := newMemStore()
	store.add(postItem(1, "Music Night", time.Now()))

	suggestions, err := NewAutocomplete(store).Suggest(context.Background(), "MUSIC")
	require.NoError(t, err)
	assert.Equal(t, []string{"Music Night"}, suggestions)
}

func TestSuggestDeduplicatesAcrossTypes(t *testing.T) {
	store := newMemStore()
	store.add(eventItem(1, "Summer Festival", time.Now()))
	store.add(postItem(1, "Summer Festival", time.Now()))
	store.add(mediaItem(1, "Summer Festival"))

	suggestions, err := NewAutocomplete(store).Suggest(context.Background(), "summer")
	require.NoError(t, err)
	assert.Equal(t, []string{"Summer Festival"}, suggestions)
}

func TestSuggestTypePriorityOrder(t *testing.T) {
	store := newMemStore()
	store.add(mediaItem(1, "Workshop Photos"))
	store.add(postItem(1, "Workshop Recap", time.Now()))
	store.add(eventItem(1, "Workshop Day", time.Now()))

	suggestions, err := NewAutocomplete(store).Suggest(context.Background(), "workshop")
	require.NoError(t, err)
	assert.Equal(t, []string{"Workshop Day", "Workshop Recap", "Workshop Photos"}, suggestions)
}

func TestSuggestBounded(t *testing.T) {
	store := newMemStore()
	for i := 0; i < 25; i++ {
		store.add(eventItem(i, fmt.Sprintf("Concert %d", i), time.Now()))
	}

	suggestions, err := NewAutocomplete(store).Suggest(context.Background(), "concert")
	require.NoError(t, err)
	assert.Len(t, suggestions, MaxSuggestions)
}

func TestSuggestStoreFailure(t *testing.T) {
	store := newMemStore()
	store.fail[TypeEvent] = true

	suggestions, err := NewAutocomplete(store).Suggest(context.Background(), "ki")
	require.Error(t, err)
	assert.Nil(t, suggestions)
}

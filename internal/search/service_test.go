package search

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 6, n, 10, 0, 0, 0, time.UTC)
}

func TestSearchEmptyFilterMatchesEverything(t *testing.T) {
	store := newMemStore()
	store.add(eventItem(1, "Spring Market", day(1)))
	store.add(eventItem(2, "Music Night", day(2)))
	store.add(postItem(1, "Annual Gala Night", day(3)))
	store.add(mediaItem(1, "Gallery Opening"))

	page, err := NewService(store).Search(context.Background(), FilterSet{}, Page{Number: 1, Size: 12})
	require.NoError(t, err)

	assert.Equal(t, 4, page.Total)
	assert.False(t, page.HasNext)
	require.Len(t, page.Items, 4)
	// merge order is events, then posts, then media
	assert.Equal(t, "event-1", page.Items[0].ID)
	assert.Equal(t, "event-2", page.Items[1].ID)
	assert.Equal(t, "post-1", page.Items[2].ID)
	assert.Equal(t, "media-1", page.Items[3].ID)
}

func TestSearchPaginationInvariant(t *testing.T) {
	store := newMemStore()
	for i := 1; i <= 14; i++ {
		store.add(eventItem(i, fmt.Sprintf("Event %d", i), day(i)))
	}
	svc := NewService(store)

	first, err := svc.Search(context.Background(), FilterSet{}, Page{Number: 1, Size: 12})
	require.NoError(t, err)
	assert.Len(t, first.Items, 12)
	assert.Equal(t, 14, first.Total)
	assert.True(t, first.HasNext)

	second, err := svc.Search(context.Background(), FilterSet{}, Page{Number: 2, Size: 12})
	require.NoError(t, err)
	assert.Len(t, second.Items, 2)
	assert.Equal(t, 14, second.Total)
	assert.False(t, second.HasNext)

	// items.length == min(size, max(0, total-(n-1)*size)) for every page
	for n := 1; n <= 4; n++ {
		p, err := svc.Search(context.Background(), FilterSet{}, Page{Number: n, Size: 5})
		require.NoError(t, err)
		want := 14 - (n-1)*5
		if want < 0 {
			want = 0
		}
		if want > 5 {
			want = 5
		}
		assert.Len(t, p.Items, want, "page %d", n)
	}
}

func TestSearchClampsMalformedPagination(t *testing.T) {
	store := newMemStore()
	store.add(eventItem(1, "Only Event", day(1)))

	page, err := NewService(store).Search(context.Background(), FilterSet{}, Page{Number: -2, Size: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Len(t, page.Items, 1)
}

func TestSearchKeywordCaseInsensitive(t *testing.T) {
	store := newMemStore()
	store.add(eventItem(1, "Music Night", day(1)))
	store.add(eventItem(2, "Spring Market", day(2)))

	page, err := NewService(store).Search(context.Background(), FilterSet{Keyword: "music"}, Page{Number: 1, Size: 12})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Music Night", page.Items[0].Title)
}

func TestSearchKeywordMatchesDescription(t *testing.T) {
	store := newMemStore()
	item := eventItem(1, "Untitled", day(1))
	item.Description = "A grand GALA for everyone"
	store.add(item)
	store.add(eventItem(2, "Spring Market", day(2)))

	page, err := NewService(store).Search(context.Background(), FilterSet{Keyword: "gala"}, Page{Number: 1, Size: 12})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "event-1", page.Items[0].ID)
}

func TestSearchKeywordAcrossTypes(t *testing.T) {
	store := newMemStore()
	store.add(eventItem(1, "Spring Market", day(1)))
	store.add(postItem(1, "Annual Gala Night", day(2)))

	page, err := NewService(store).Search(context.Background(), FilterSet{Keyword: "gala"}, Page{Number: 1, Size: 12})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, TypePost, page.Items[0].ContentType)
	assert.Equal(t, 1, page.Total)
}

func TestSearchFiltersAreConjunctive(t *testing.T) {
	store := newMemStore()
	a := postItem(1, "Harvest Recipes", day(1), "food")
	a.Category = "Cooking"
	store.add(a)
	b := postItem(2, "Harvest Festival Recap", day(2), "community")
	b.Category = "News"
	store.add(b)
	c := postItem(3, "Cooking Classes", day(3), "food")
	c.Category = "Cooking"
	store.add(c)

	filters := FilterSet{
		Keyword:      "harvest",
		ContentType:  TypePost,
		PostCategory: "Cooking",
		PostTag:      "food",
	}
	page, err := NewService(store).Search(context.Background(), filters, Page{Number: 1, Size: 12})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "post-1", page.Items[0].ID)
}

func TestSearchContentTypeFilter(t *testing.T) {
	store := newMemStore()
	store.add(eventItem(1, "Music Night", day(1)))
	store.add(postItem(1, "Music Reviews", day(2)))

	page, err := NewService(store).Search(context.Background(), FilterSet{ContentType: TypeEvent}, Page{Number: 1, Size: 12})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, TypeEvent, page.Items[0].ContentType)
}

func TestSearchDateRangeFilter(t *testing.T) {
	store := newMemStore()
	store.add(eventItem(1, "Early", day(1)))
	store.add(eventItem(2, "Middle", day(10)))
	store.add(eventItem(3, "Late", day(20)))

	from := day(5)
	to := day(15)
	page, err := NewService(store).Search(context.Background(), FilterSet{DateFrom: &from, DateTo: &to}, Page{Number: 1, Size: 12})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Middle", page.Items[0].Title)
}

func TestSearchDateSortDatelessLast(t *testing.T) {
	store := newMemStore()
	store.add(eventItem(1, "Oldest", day(1)))
	store.add(eventItem(2, "Newest", day(20)))
	store.add(mediaItem(1, "Undated Photo"))

	svc := NewService(store)

	desc, err := svc.Search(context.Background(), FilterSet{Sort: SortDateDesc}, Page{Number: 1, Size: 12})
	require.NoError(t, err)
	require.Len(t, desc.Items, 3)
	assert.Equal(t, "Newest", desc.Items[0].Title)
	assert.Equal(t, "Oldest", desc.Items[1].Title)
	assert.Equal(t, "Undated Photo", desc.Items[2].Title)

	asc, err := svc.Search(context.Background(), FilterSet{Sort: SortDateAsc}, Page{Number: 1, Size: 12})
	require.NoError(t, err)
	require.Len(t, asc.Items, 3)
	assert.Equal(t, "Oldest", asc.Items[0].Title)
	assert.Equal(t, "Newest", asc.Items[1].Title)
	assert.Equal(t, "Undated Photo", asc.Items[2].Title)
}

func TestSearchDateSortStableOnTies(t *testing.T) {
	store := newMemStore()
	store.add(eventItem(1, "First", day(5)))
	store.add(eventItem(2, "Second", day(5)))
	store.add(postItem(1, "Third", day(5)))

	page, err := NewService(store).Search(context.Background(), FilterSet{Sort: SortDateAsc}, Page{Number: 1, Size: 12})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "First", page.Items[0].Title)
	assert.Equal(t, "Second", page.Items[1].Title)
	assert.Equal(t, "Third", page.Items[2].Title)
}

func TestSearchIdempotent(t *testing.T) {
	store := newMemStore()
	for i := 1; i <= 5; i++ {
		store.add(eventItem(i, fmt.Sprintf("Event %d", i), day(i)))
	}
	svc := NewService(store)
	filters := FilterSet{Keyword: "event", Sort: SortDateDesc}

	first, err := svc.Search(context.Background(), filters, Page{Number: 1, Size: 3})
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), filters, Page{Number: 1, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSearchNoMatchesIsNotAnError(t *testing.T) {
	store := newMemStore()
	store.add(eventItem(1, "Spring Market", day(1)))

	page, err := NewService(store).Search(context.Background(), FilterSet{Keyword: "nonexistent"}, Page{Number: 1, Size: 12})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNext)
}

func TestSearchStoreFailureFailsWholeCall(t *testing.T) {
	store := newMemStore()
	store.add(eventItem(1, "Spring Market", day(1)))
	store.fail[TypePost] = true

	page, err := NewService(store).Search(context.Background(), FilterSet{}, Page{Number: 1, Size: 12})
	require.Error(t, err)
	assert.Nil(t, page)
	assert.ErrorIs(t, err, errStoreDown)
}

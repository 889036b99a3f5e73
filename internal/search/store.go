package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentStore is the read-only view of the content tables consumed by the
// search service. Implementations must return rows in insertion order so
// relevance ordering stays deterministic.
type ContentStore interface {
	// Items returns the searchable projection of every record of the given
	// type matching the predicate. Keyword filtering is not the store's job.
	Items(ctx context.Context, t ContentType, pred Predicate) ([]SearchableItem, error)
	// Titles returns all titles of the given type in insertion order, used
	// to derive autocomplete suggestions.
	Titles(ctx context.Context, t ContentType) ([]string, error)
}

// PostgresStore queries the CMS tables through a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Items(ctx context.Context, t ContentType, pred Predicate) ([]SearchableItem, error) {
	switch t {
	case TypeEvent:
		return s.eventItems(ctx, pred)
	case TypePost:
		return s.postItems(ctx, pred)
	case TypeMedia:
		return s.mediaItems(ctx, pred)
	default:
		return nil, fmt.Errorf("unknown content type %q", t)
	}
}

func (s *PostgresStore) eventItems(ctx context.Context, pred Predicate) ([]SearchableItem, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	argCounter := 1

	if pred.Category != "" {
		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM event_categories ec
			JOIN categories c ON c.id = ec.category_id
			WHERE ec.event_id = e.id AND c.name = $%d
		)`, argCounter))
		args = append(args, pred.Category)
		argCounter++
	}
	dateWhere, dateArgs := dateConditions("e.event_date", pred, argCounter)
	where = append(where, dateWhere...)
	args = append(args, dateArgs...)

	query := fmt.Sprintf(`
		SELECT e.id, e.title, e.description, e.event_date,
			COALESCE((
				SELECT c.name FROM event_categories ec
				JOIN categories c ON c.id = ec.category_id
				WHERE ec.event_id = e.id
				ORDER BY c.name LIMIT 1
			), ''),
			COALESCE((
				SELECT '/uploads/' || m.filename FROM media m
				WHERE m.linked_type = 'event' AND m.linked_id = e.id AND m.media_type = 'image'
				ORDER BY m.uploaded_at LIMIT 1
			), '')
		FROM events e
		WHERE %s
		ORDER BY e.created_at, e.id
	`, strings.Join(where, " AND "))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var items []SearchableItem
	for rows.Next() {
		var item SearchableItem
		var date time.Time
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &date, &item.Category, &item.Thumbnail); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		item.ContentType = TypeEvent
		item.Date = &date
		item.URL = "/events/" + item.ID
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) postItems(ctx context.Context, pred Predicate) ([]SearchableItem, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	argCounter := 1

	if pred.Category != "" {
		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM post_categories pc
			JOIN categories c ON c.id = pc.category_id
			WHERE pc.post_id = p.id AND c.name = $%d
		)`, argCounter))
		args = append(args, pred.Category)
		argCounter++
	}
	if pred.Tag != "" {
		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM post_tags pt WHERE pt.post_id = p.id AND pt.tag = $%d
		)`, argCounter))
		args = append(args, pred.Tag)
		argCounter++
	}
	dateWhere, dateArgs := dateConditions("p.published_at", pred, argCounter)
	where = append(where, dateWhere...)
	args = append(args, dateArgs...)

	query := fmt.Sprintf(`
		SELECT p.id, p.title, p.body, p.published_at,
			COALESCE((
				SELECT c.name FROM post_categories pc
				JOIN categories c ON c.id = pc.category_id
				WHERE pc.post_id = p.id
				ORDER BY c.name LIMIT 1
			), ''),
			COALESCE((
				SELECT array_agg(pt.tag ORDER BY pt.tag) FROM post_tags pt WHERE pt.post_id = p.id
			), '{}'),
			COALESCE((
				SELECT '/uploads/' || m.filename FROM media m
				WHERE m.linked_type = 'post' AND m.linked_id = p.id AND m.media_type = 'image'
				ORDER BY m.uploaded_at LIMIT 1
			), '')
		FROM posts p
		WHERE %s
		ORDER BY p.created_at, p.id
	`, strings.Join(where, " AND "))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var items []SearchableItem
	for rows.Next() {
		var item SearchableItem
		var date time.Time
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &date, &item.Category, &item.Tags, &item.Thumbnail); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		item.ContentType = TypePost
		item.Date = &date
		item.URL = "/blog/" + item.ID
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) mediaItems(ctx context.Context, pred Predicate) ([]SearchableItem, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	argCounter := 1

	if pred.MediaType != "" {
		where = append(where, fmt.Sprintf("m.media_type = $%d", argCounter))
		args = append(args, pred.MediaType)
		argCounter++
	}
	dateWhere, dateArgs := dateConditions("m.uploaded_at", pred, argCounter)
	where = append(where, dateWhere...)
	args = append(args, dateArgs...)

	query := fmt.Sprintf(`
		SELECT m.id, m.title, m.media_type, m.filename, m.uploaded_at
		FROM media m
		WHERE %s
		ORDER BY m.uploaded_at, m.id
	`, strings.Join(where, " AND "))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query media: %w", err)
	}
	defer rows.Close()

	var items []SearchableItem
	for rows.Next() {
		var item SearchableItem
		var mediaType, filename string
		var date time.Time
		if err := rows.Scan(&item.ID, &item.Title, &mediaType, &filename, &date); err != nil {
			return nil, fmt.Errorf("failed to scan media: %w", err)
		}
		item.ContentType = TypeMedia
		item.Category = mediaType
		item.Date = &date
		item.URL = "/uploads/" + filename
		if mediaType == "image" {
			item.Thumbnail = item.URL
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) Titles(ctx context.Context, t ContentType) ([]string, error) {
	var query string
	switch t {
	case TypeEvent:
		query = `SELECT title FROM events ORDER BY created_at, id`
	case TypePost:
		query = `SELECT title FROM posts ORDER BY created_at, id`
	case TypeMedia:
		query = `SELECT title FROM media ORDER BY uploaded_at, id`
	default:
		return nil, fmt.Errorf("unknown content type %q", t)
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s titles: %w", t, err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("failed to scan title: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

// dateConditions renders the optional date bounds against the given column,
// continuing the caller's placeholder numbering.
func dateConditions(column string, pred Predicate, argCounter int) ([]string, []interface{}) {
	var where []string
	var args []interface{}
	if pred.DateFrom != nil {
		where = append(where, fmt.Sprintf("%s >= $%d", column, argCounter))
		args = append(args, *pred.DateFrom)
		argCounter++
	}
	if pred.DateTo != nil {
		where = append(where, fmt.Sprintf("%s <= $%d", column, argCounter))
		args = append(args, *pred.DateTo)
	}
	return where, args
}

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	contentmodels "io.lumenworks.contenthub/internal/models/content"
	listmodels "io.lumenworks.contenthub/internal/models/list_posts"
)

// ListPosts returns posts for the dashboard, newest published first, with
// optional title keyword, category name, tag, and publish-day filters.
func (h *PostHandler) ListPosts(c *gin.Context) {
	ctx := context.Background()

	whereConditions := []string{"1=1"}
	args := []interface{}{}
	argCounter := 1

	if keyword := strings.TrimSpace(c.Query("keyword")); keyword != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("p.title ILIKE $%d", argCounter))
		args = append(args, "%"+keyword+"%")
		argCounter++
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		whereConditions = append(whereConditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM post_categories pc
			JOIN categories cat ON cat.id = pc.category_id
			WHERE pc.post_id = p.id AND cat.name = $%d
		)`, argCounter))
		args = append(args, category)
		argCounter++
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		whereConditions = append(whereConditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM post_tags pt WHERE pt.post_id = p.id AND pt.tag = $%d
		)`, argCounter))
		args = append(args, tag)
		argCounter++
	}
	if date, ok := parseContentDate(c.Query("date")); ok {
		whereConditions = append(whereConditions, fmt.Sprintf("DATE(p.published_at) = $%d", argCounter))
		args = append(args, date)
		argCounter++
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.title, p.body, p.published_at, p.created_at
		FROM posts p
		WHERE %s
		ORDER BY p.published_at DESC
	`, strings.Join(whereConditions, " AND "))

	rows, err := h.postgres.Query(ctx, query, args...)
	if err != nil {
		h.logError(c, err, "failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}
	defer rows.Close()

	var postIDs []string
	var posts []contentmodels.Post

	for rows.Next() {
		var post contentmodels.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Body, &post.PublishedAt, &post.CreatedAt); err != nil {
			h.logError(c, err, "failed to scan post")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
			return
		}
		post.Categories = []string{}
		post.Tags = []string{}
		posts = append(posts, post)
		postIDs = append(postIDs, post.ID)
	}

	postMap := make(map[string]*contentmodels.Post)
	for i := range posts {
		postMap[posts[i].ID] = &posts[i]
	}

	if len(postIDs) > 0 {
		if err := fetchCategoriesFor(ctx, h.postgres, "post_categories", "post_id", postIDs, func(id, name string) {
			if post, exists := postMap[id]; exists {
				post.Categories = append(post.Categories, name)
			}
		}); err != nil {
			h.logError(c, err, "failed to fetch post categories")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
			return
		}

		if err := h.fetchTagsFor(ctx, postIDs, postMap); err != nil {
			h.logError(c, err, "failed to fetch post tags")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
			return
		}
	}

	if posts == nil {
		posts = []contentmodels.Post{}
	}
	c.JSON(http.StatusOK, listmodels.ListPostsResponse{Posts: posts, Total: len(posts)})
}

// fetchTagsFor loads tags for a batch of posts
func (h *PostHandler) fetchTagsFor(ctx context.Context, postIDs []string, postMap map[string]*contentmodels.Post) error {
	placeholders := make([]string, len(postIDs))
	args := make([]interface{}, len(postIDs))
	for i, id := range postIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT post_id, tag FROM post_tags
		WHERE post_id IN (%s)
		ORDER BY tag
	`, strings.Join(placeholders, ","))

	rows, err := h.postgres.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to fetch tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID, tag string
		if err := rows.Scan(&postID, &tag); err != nil {
			return fmt.Errorf("failed to scan tag: %w", err)
		}
		if post, exists := postMap[postID]; exists {
			post.Tags = append(post.Tags, tag)
		}
	}
	return rows.Err()
}

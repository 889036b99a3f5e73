package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// InitPostgres initializes and returns a PostgreSQL connection pool
func InitPostgres() (*pgxpool.Pool, error) {
	// Get database URL from environment variable or use default
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		// Default local development configuration
		host := getEnvOrDefault("POSTGRES_HOST", "localhost")
		port := getEnvOrDefault("POSTGRES_PORT", "5432")
		user := getEnvOrDefault("POSTGRES_USER", "contenthub")
		password := getEnvOrDefault("POSTGRES_PASSWORD", "")
		dbname := getEnvOrDefault("POSTGRES_DB", "contenthub")
		sslmode := getEnvOrDefault("POSTGRES_SSLMODE", "disable")

		databaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			user, password, host, port, dbname, sslmode)
	}

	// Configure connection pool
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Set connection pool settings
	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = time.Minute * 30
	config.HealthCheckPeriod = time.Minute * 5

	// Create connection pool
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Create tables if they don't exist
	if err := createTables(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	// Seed the default admin account on first run
	if err := seedAdminUser(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	return pool, nil
}

// createTables creates all required tables if they don't exist
func createTables(ctx context.Context, pool *pgxpool.Pool) error {
	// Admin users table - dashboard accounts
	adminUsersTable := `
		CREATE TABLE IF NOT EXISTS admin_users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(64) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		);
	`

	// Admin sessions table - bearer tokens issued at login
	adminSessionsTable := `
		CREATE TABLE IF NOT EXISTS admin_sessions (
			token UUID PRIMARY KEY,
			username VARCHAR(64) NOT NULL REFERENCES admin_users(username) ON DELETE CASCADE,
			created_at TIMESTAMP DEFAULT NOW(),
			expires_at TIMESTAMP NOT NULL
		);
	`

	// Categories table - shared by events and posts, split by content_type
	categoriesTable := `
		CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) UNIQUE NOT NULL,
			content_type VARCHAR(20) NOT NULL CHECK (content_type IN ('event', 'post')),
			created_at TIMESTAMP DEFAULT NOW()
		);
	`

	// Events table
	eventsTable := `
		CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(200) NOT NULL,
			description TEXT NOT NULL,
			event_date TIMESTAMP NOT NULL,
			language VARCHAR(10) DEFAULT 'en',
			created_at TIMESTAMP DEFAULT NOW()
		);
	`

	eventCategoriesTable := `
		CREATE TABLE IF NOT EXISTS event_categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			UNIQUE(event_id, category_id)
		);
	`

	// Posts table
	postsTable := `
		CREATE TABLE IF NOT EXISTS posts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(200) NOT NULL,
			body TEXT NOT NULL,
			published_at TIMESTAMP DEFAULT NOW(),
			created_at TIMESTAMP DEFAULT NOW()
		);
	`

	postCategoriesTable := `
		CREATE TABLE IF NOT EXISTS post_categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
			category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			UNIQUE(post_id, category_id)
		);
	`

	postTagsTable := `
		CREATE TABLE IF NOT EXISTS post_tags (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
			tag VARCHAR(100) NOT NULL,
			UNIQUE(post_id, tag)
		);
	`

	// Media table - uploaded files, optionally linked to an event or post
	mediaTable := `
		CREATE TABLE IF NOT EXISTS media (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			filename VARCHAR(255) UNIQUE NOT NULL,
			media_type VARCHAR(10) NOT NULL CHECK (media_type IN ('image', 'video')),
			linked_type VARCHAR(20),
			linked_id UUID,
			uploaded_at TIMESTAMP DEFAULT NOW()
		);
	`

	// Analytics table - aggregated page view counters
	analyticsTable := `
		CREATE TABLE IF NOT EXISTS analytics (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			page VARCHAR(100) UNIQUE NOT NULL,
			views BIGINT NOT NULL DEFAULT 0,
			popularity_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			updated_at TIMESTAMP DEFAULT NOW()
		);
	`

	// Create indexes for better performance
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_admin_sessions_username ON admin_sessions(username);`,
		`CREATE INDEX IF NOT EXISTS idx_admin_sessions_expires_at ON admin_sessions(expires_at);`,
		`CREATE INDEX IF NOT EXISTS idx_categories_content_type ON categories(content_type);`,
		`CREATE INDEX IF NOT EXISTS idx_events_event_date ON events(event_date);`,
		`CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_event_categories_event_id ON event_categories(event_id);`,
		`CREATE INDEX IF NOT EXISTS idx_posts_published_at ON posts(published_at);`,
		`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_post_categories_post_id ON post_categories(post_id);`,
		`CREATE INDEX IF NOT EXISTS idx_post_tags_post_id ON post_tags(post_id);`,
		`CREATE INDEX IF NOT EXISTS idx_post_tags_tag ON post_tags(tag);`,
		`CREATE INDEX IF NOT EXISTS idx_media_media_type ON media(media_type);`,
		`CREATE INDEX IF NOT EXISTS idx_media_linked ON media(linked_type, linked_id);`,
		`CREATE INDEX IF NOT EXISTS idx_analytics_page ON analytics(page);`,
	}

	// Execute table creation statements
	tables := []string{
		adminUsersTable, adminSessionsTable, categoriesTable,
		eventsTable, eventCategoriesTable,
		postsTable, postCategoriesTable, postTagsTable,
		mediaTable, analyticsTable,
	}

	for _, table := range tables {
		if _, err := pool.Exec(ctx, table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// Execute index creation statements
	for _, index := range indexes {
		if _, err := pool.Exec(ctx, index); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// seedAdminUser creates the initial dashboard account when none exists yet.
// Username and password come from ADMIN_USERNAME/ADMIN_PASSWORD.
func seedAdminUser(ctx context.Context, pool *pgxpool.Pool) error {
	username := getEnvOrDefault("ADMIN_USERNAME", "admin")
	password := getEnvOrDefault("ADMIN_PASSWORD", "admin123")

	var exists bool
	err := pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM admin_users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = pool.Exec(ctx, `INSERT INTO admin_users (username, password_hash) VALUES ($1, $2)`, username, string(hash))
	if err != nil {
		return fmt.Errorf("failed to insert admin user: %w", err)
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default value if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	firebaseutil "io.lumenworks.contenthub/internal/firebase"
)

// AdminAuthMiddleware guards the dashboard API. It accepts a bearer session
// token issued by the login endpoint, checked against the Redis session
// cache first and the admin_sessions table second. When a Firebase app is
// configured, a verified Firebase ID token is accepted as a last resort so
// operators can sign in through SSO.
func AdminAuthMiddleware(firebaseApp *firebase.App, postgres *pgxpool.Pool, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Check if header starts with "Bearer "
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with 'Bearer '"})
			c.Abort()
			return
		}

		// Extract token
		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
			c.Abort()
			return
		}

		ctx := context.Background()

		// Step 1: Try the Redis session cache
		var username string
		if cached, err := redisClient.Get(ctx, "admin_session:"+token).Result(); err == nil {
			username = cached
		}

		// Step 2: If not cached, try Postgres
		if username == "" {
			query := `SELECT username FROM admin_sessions WHERE token = $1 AND expires_at > NOW()`
			if err := postgres.QueryRow(ctx, query, token).Scan(&username); err == nil {
				// Re-cache for subsequent requests
				redisClient.Set(ctx, "admin_session:"+token, username, time.Hour)
			}
		}

		// Step 3: If not a session token, verify with Firebase as last resort
		if username == "" && firebaseApp != nil {
			authClient, err := firebaseutil.GetAuthClient(firebaseApp)
			if err == nil {
				if idToken, err := authClient.VerifyIDToken(ctx, token); err == nil {
					username = idToken.UID
				}
			}
		}

		if username == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Set admin username in context for use in handlers
		c.Set("admin_user", username)
		c.Next()
	}
}

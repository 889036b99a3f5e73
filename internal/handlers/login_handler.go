package handlers

import (
	"context"
	"net/http"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	loginmodels "io.lumenworks.contenthub/internal/models/login"
)

const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	firebaseApp *firebase.App
	postgres    *pgxpool.Pool
	redis       *redis.Client
	logger      *zap.SugaredLogger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(firebaseApp *firebase.App, postgres *pgxpool.Pool, redis *redis.Client, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		firebaseApp: firebaseApp,
		postgres:    postgres,
		redis:       redis,
		logger:      logger,
	}
}

// Login handles admin dashboard logins and issues a bearer session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginmodels.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	ctx := context.Background()

	var passwordHash string
	query := `SELECT password_hash FROM admin_users WHERE username = $1`
	err := h.postgres.QueryRow(ctx, query, req.Username).Scan(&passwordHash)
	if err != nil {
		// Same response for unknown user and wrong password
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token := uuid.New().String()
	expiresAt := time.Now().Add(sessionTTL)

	sessionQuery := `
		INSERT INTO admin_sessions (token, username, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := h.postgres.Exec(ctx, sessionQuery, token, req.Username, expiresAt); err != nil {
		h.logError(c, err, "failed to persist session", "username", req.Username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	// Cache the session so the auth middleware can skip Postgres
	if err := h.redis.Set(ctx, "admin_session:"+token, req.Username, time.Hour).Err(); err != nil {
		// Non-fatal: the middleware falls back to Postgres
		h.logError(c, err, "failed to cache session", "username", req.Username)
	}

	c.JSON(http.StatusOK, loginmodels.LoginResponse{
		Token:     token,
		Username:  req.Username,
		ExpiresAt: expiresAt,
	})
}

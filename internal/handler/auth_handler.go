package handler

import (
	"crypto/subtle"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stratigo/borehole-backend-go/internal/config"
	"github.com/stratigo/borehole-backend-go/internal/middleware"
	"github.com/stratigo/borehole-backend-go/pkg/response"
)

// AuthHandler issues API tokens
type AuthHandler struct {
	secret   string
	user     string
	password string
}

// NewAuthHandler creates a new auth handler from the configured credentials
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		secret:   cfg.JWTSecret,
		user:     cfg.APIUser,
		password: cfg.APIPassword,
	}
}

// Login handles POST /api/v1/auth/login. Credentials come from the
// configuration; this is a single-operator deployment, not a user system.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if h.user == "" || h.password == "" {
		response.Forbidden(c, "API credentials not configured")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.user)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1
	if !userOK || !passOK {
		response.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := middleware.IssueToken(h.secret, req.Username, 24*time.Hour)
	if err != nil {
		response.InternalError(c, "Failed to issue token")
		return
	}

	response.Success(c, gin.H{"token": token})
}

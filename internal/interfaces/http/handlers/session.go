// internal/interfaces/http/handlers/session.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/auth"
)

// SessionHandler issues shopping session tokens
type SessionHandler struct {
	sessionManager *auth.SessionManager
	config         *config.Config
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(manager *auth.SessionManager, cfg *config.Config) *SessionHandler {
	return &SessionHandler{
		sessionManager: manager,
		config:         cfg,
	}
}

// Create handles POST /session. Every client starts here: the returned
// bearer token identifies one cart/favorites session.
func (h *SessionHandler) Create(c *gin.Context) {
	sessionID := auth.NewSessionID()

	token, err := h.sessionManager.GenerateToken(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create session",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Session created successfully",
		"data": gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_in": int64(h.config.Session.TokenExpiry.Seconds()),
		},
	})
}

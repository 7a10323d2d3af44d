// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/pkg/auth"
)

const (
	sessionIDKey = "session_id"
	userIDKey    = "user_id"
)

// Session validates the bearer session token and stores its claims on
// the request context. Requests without a valid token are rejected.
func Session(manager *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session token required",
			})
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session token",
			})
			c.Abort()
			return
		}

		c.Set(sessionIDKey, claims.SessionID)
		c.Set(userIDKey, claims.UserID)

		c.Next()
	}
}

// GetSessionID returns the session ID stored by the Session middleware
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID := c.GetString(sessionIDKey)
	return sessionID, sessionID != ""
}

// GetUserID returns the remote user ID bound to the session
func GetUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

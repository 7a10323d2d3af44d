// internal/pkg/auth/session.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/your-org/storefront/internal/config"
)

// SessionClaims represents the JWT claims of a shopping session token
type SessionClaims struct {
	SessionID string `json:"session_id"`
	UserID    int64  `json:"user_id"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates shopping session tokens. Each
// token binds one cart/favorites session; there is no account login.
type SessionManager struct {
	config *config.Config
}

// NewSessionManager creates a new session manager
func NewSessionManager(cfg *config.Config) *SessionManager {
	return &SessionManager{
		config: cfg,
	}
}

// NewSessionID generates a fresh session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// GenerateToken signs a token for the given session
func (m *SessionManager) GenerateToken(sessionID string) (string, error) {
	now := time.Now().UTC()

	claims := &SessionClaims{
		SessionID: sessionID,
		UserID:    m.config.Session.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.Session.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.config.App.Name,
			Subject:   fmt.Sprintf("session:%s", sessionID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.JWT.Secret))
}

// ValidateToken validates and parses a session token
func (m *SessionManager) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.config.JWT.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.SessionID == "" {
		return nil, fmt.Errorf("token carries no session")
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts a bearer token from an Authorization header
func ExtractTokenFromHeader(authHeader string) string {
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ""
}

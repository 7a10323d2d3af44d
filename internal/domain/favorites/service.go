// internal/domain/favorites/service.go
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront/internal/config"
)

// Store is the session-state backend the favorite set is kept in
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// Service handles the session-local favorite products. Favorites are a
// client-side concern and are never persisted to the remote backend.
type Service struct {
	store  Store
	config *config.Config
}

// NewService creates a new favorites service
func NewService(store Store, cfg *config.Config) *Service {
	return &Service{
		store:  store,
		config: cfg,
	}
}

// Toggle flips the favorite flag of one product and reports the new
// state.
func (s *Service) Toggle(ctx context.Context, sessionID string, productID int64) (bool, error) {
	ids, err := s.List(ctx, sessionID)
	if err != nil {
		return false, err
	}

	favorite := true
	next := make([]int64, 0, len(ids)+1)
	for _, id := range ids {
		if id == productID {
			favorite = false
			continue
		}
		next = append(next, id)
	}
	if favorite {
		next = append(next, productID)
	}

	data, err := json.Marshal(next)
	if err != nil {
		return false, fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := s.store.Set(ctx, s.key(sessionID), data, s.config.Session.CartTTL); err != nil {
		return false, fmt.Errorf("failed to save favorites: %w", err)
	}

	return favorite, nil
}

// List returns the favorited product ids of a session in toggle order
func (s *Service) List(ctx context.Context, sessionID string) ([]int64, error) {
	data, err := s.store.Get(ctx, s.key(sessionID))
	if errors.Is(err, redis.Nil) {
		return []int64{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	var ids []int64
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return ids, nil
}

// Set returns the favorite ids as a lookup set
func (s *Service) Set(ctx context.Context, sessionID string) (map[int64]bool, error) {
	ids, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (s *Service) key(sessionID string) string {
	return fmt.Sprintf("favorites:session:%s", sessionID)
}

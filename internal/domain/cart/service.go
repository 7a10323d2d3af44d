// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// Store is the session-state backend carts are persisted to between
// requests. Satisfied by the Redis client wrapper.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Service handles cart business logic for one storefront instance.
// Local session state is the working copy; every mutation is applied
// locally first and then pushed to the remote cart resource. A remote
// failure rolls the session back to its pre-mutation snapshot, and a
// remote success response replaces local state wholesale.
type Service struct {
	store   Store
	gateway catalog.Gateway
	config  *config.Config
}

// NewService creates a new cart service
func NewService(store Store, gateway catalog.Gateway, cfg *config.Config) *Service {
	return &Service{
		store:   store,
		gateway: gateway,
		config:  cfg,
	}
}

// Get retrieves the cart for a session, creating an empty one if none
// exists yet.
func (s *Service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	data, err := s.store.Get(ctx, s.cartKey(sessionID))
	if errors.Is(err, redis.Nil) {
		return New(s.config.Session.UserID), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load session cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode session cart: %w", err)
	}

	return &c, nil
}

// AddItem adds a product to the session cart. The product snapshot is
// fetched from the remote catalog at add time.
func (s *Service) AddItem(ctx context.Context, sessionID string, productID int64, quantity int, size, color string) (*Cart, error) {
	product, err := s.gateway.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	snapshot := c.Clone()
	if err := c.AddItem(product, quantity, size, color); err != nil {
		return nil, err
	}

	return s.persistAndSync(ctx, sessionID, c, snapshot)
}

// SetQuantity updates the quantity of an existing line. Quantities
// below one remove the line.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, productID int64, size, color string, quantity int) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	snapshot := c.Clone()
	if err := c.SetQuantity(productID, size, color, quantity); err != nil {
		return nil, err
	}

	return s.persistAndSync(ctx, sessionID, c, snapshot)
}

// RemoveItem removes a line from the session cart
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int64, size, color string) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	snapshot := c.Clone()
	c.RemoveItem(productID, size, color)

	return s.persistAndSync(ctx, sessionID, c, snapshot)
}

// Clear empties the session cart and deletes the remote cart resource
// if one was created. Called after a successful checkout.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	if c.ID != 0 {
		if err := s.gateway.DeleteCart(ctx, c.ID); err != nil {
			return err
		}
	}

	return s.store.Del(ctx, s.cartKey(sessionID))
}

// Refresh pulls the remote cart resource and replaces local state with
// the server's answer. No-op when the cart was never persisted remotely.
func (s *Service) Refresh(ctx context.Context, sessionID string) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if c.ID == 0 {
		return c, nil
	}

	remote, err := s.gateway.GetCart(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	refreshed, err := s.hydrate(ctx, remote, c)
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, sessionID, refreshed); err != nil {
		return nil, err
	}
	return refreshed, nil
}

// persistAndSync applies the optimistic local write, pushes the cart to
// the remote backend, and reconciles. The pre-mutation snapshot is
// restored on any remote failure so local and remote state never
// diverge silently.
func (s *Service) persistAndSync(ctx context.Context, sessionID string, c, snapshot *Cart) (*Cart, error) {
	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}

	remote := catalog.RemoteCart{
		ID:     c.ID,
		UserID: c.UserID,
		Date:   c.UpdatedAt,
		Lines:  c.RemoteLines(),
	}

	var (
		confirmed catalog.RemoteCart
		err       error
	)
	if c.ID == 0 {
		confirmed, err = s.gateway.CreateCart(ctx, remote)
	} else {
		confirmed, err = s.gateway.UpdateCart(ctx, remote)
	}

	if err != nil {
		if rbErr := s.save(ctx, sessionID, snapshot); rbErr != nil {
			return nil, fmt.Errorf("remote sync failed and rollback failed: %w", errors.Join(err, rbErr))
		}
		return nil, fmt.Errorf("remote cart sync failed: %w", err)
	}

	// Record the server-assigned id before re-hydrating. Losing it on a
	// failed product lookup would fork a second remote cart on the next
	// mutation, orphaning this one.
	if c.ID != confirmed.ID {
		c.ID = confirmed.ID
		if err := s.save(ctx, sessionID, c); err != nil {
			return nil, err
		}
	}

	// The server's response is authoritative: rebuild local state from
	// it instead of merging fields.
	reconciled, err := s.hydrate(ctx, confirmed, c)
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, sessionID, reconciled); err != nil {
		return nil, err
	}
	return reconciled, nil
}

// hydrate turns a wire cart (product ids and quantities only) back into
// a fully priced cart by resolving each product through the catalog.
// Variant labels are not part of the wire format; they are re-attached
// from the previous local line for the same product.
func (s *Service) hydrate(ctx context.Context, remote catalog.RemoteCart, prev *Cart) (*Cart, error) {
	products := make(map[int64]catalog.Product)
	if len(remote.Lines) > 0 {
		listing, err := s.gateway.ListProducts(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range listing {
			products[p.ID] = p
		}
	}

	c := New(remote.UserID)
	c.ID = remote.ID
	if prev != nil {
		c.CreatedAt = prev.CreatedAt
	}

	for _, line := range remote.Lines {
		product, ok := products[line.ProductID]
		if !ok {
			fetched, err := s.gateway.GetProduct(ctx, line.ProductID)
			if err != nil {
				return nil, err
			}
			product = fetched
		}

		size, color := "", ""
		if prev != nil {
			if i := prev.findAnyLine(line.ProductID); i >= 0 {
				size = prev.Items[i].SelectedSize
				color = prev.Items[i].SelectedColor
			}
		}

		if err := c.AddItem(product, line.Quantity, size, color); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (s *Service) save(ctx context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode session cart: %w", err)
	}
	return s.store.Set(ctx, s.cartKey(sessionID), data, s.config.Session.CartTTL)
}

func (s *Service) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// findAnyLine ignores variant labels; used when mapping wire lines back
// to local lines.
func (c *Cart) findAnyLine(productID int64) int {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

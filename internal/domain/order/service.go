// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/checkout"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when no order matches the requested
// order number within the session.
var ErrOrderNotFound = errors.New("order not found")

// deliveryEstimate is added to the creation time once persistence is
// confirmed.
const deliveryEstimate = 7 * 24 * time.Hour

// DefaultPageLimit is the order history page size used when the caller
// requests none or an out-of-range one.
const DefaultPageLimit = 20

// maxPageLimit caps the order history page size
const maxPageLimit = 100

// NormalizePagination clamps paging parameters to their valid ranges
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageLimit {
		limit = DefaultPageLimit
	}
	return page, limit
}

// Service handles order persistence and status progression
type Service struct {
	db          *gorm.DB
	config      *config.Config
	cartService *cart.Service
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config, cartService *cart.Service) *Service {
	return &Service{
		db:          db,
		config:      cfg,
		cartService: cartService,
	}
}

// Checkout runs the two-phase checkout for a session: build the order
// locally from the current cart (no network, no side effects), then
// persist it. The cart is cleared only after persistence succeeds; on
// any failure it stays untouched so checkout can be retried.
func (s *Service) Checkout(ctx context.Context, sessionID string, address checkout.Address, payment checkout.PaymentMethod) (*Order, error) {
	c, err := s.cartService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	o, err := Build(c, address, payment)
	if err != nil {
		return nil, err
	}

	placed, err := s.Place(ctx, sessionID, o)
	if err != nil {
		return nil, err
	}

	if err := s.cartService.Clear(ctx, sessionID); err != nil {
		// The order is already placed; a stale cart is recoverable, a
		// lost order is not.
		logrus.WithFields(logrus.Fields{
			"session_id":   sessionID,
			"order_number": placed.OrderNumber,
		}).WithError(err).Warn("order placed but cart cleanup failed")
	}

	return placed, nil
}

// OrderListResponse represents a paginated order listing
type OrderListResponse struct {
	Orders     []Order `json:"orders"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}

// Place persists a built order. This is the second phase of checkout:
// the backend assigns the order number and delivery estimate here, and
// only after this call succeeds may the caller clear the cart.
func (s *Service) Place(ctx context.Context, sessionID string, o *Order) (*Order, error) {
	o.SessionID = sessionID
	o.OrderNumber = s.generateOrderNumber()

	estimated := o.CreatedAt.Add(deliveryEstimate)
	o.EstimatedDelivery = &estimated

	o.AddStatusHistory(OrderStatusPending, "Order created")

	if err := s.db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	return o, nil
}

// GetOrders retrieves the order history of a session, newest first
func (s *Service) GetOrders(ctx context.Context, sessionID string, page, limit int) (*OrderListResponse, error) {
	page, limit = NormalizePagination(page, limit)

	query := s.db.WithContext(ctx).Model(&Order{}).Where("session_id = ?", sessionID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []Order
	err := query.
		Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &OrderListResponse{
		Orders:     orders,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// GetOrderByNumber retrieves a single order of a session
func (s *Service) GetOrderByNumber(ctx context.Context, sessionID, orderNumber string) (*Order, error) {
	var o Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("session_id = ? AND order_number = ?", sessionID, orderNumber).
		First(&o).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}

	return &o, nil
}

// UpdateStatus drives the status machine for one order. Illegal
// transitions are rejected and leave the stored status unchanged.
func (s *Service) UpdateStatus(ctx context.Context, sessionID, orderNumber string, to OrderStatus, comment string) (*Order, error) {
	o, err := s.GetOrderByNumber(ctx, sessionID, orderNumber)
	if err != nil {
		return nil, err
	}

	next, err := Transition(o.Status, to)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Order{}).Where("id = ?", o.ID).Update("status", next).Error; err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		history := OrderStatusHistory{
			OrderID:   o.ID,
			Status:    next,
			Comment:   comment,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.Create(&history).Error; err != nil {
			return fmt.Errorf("failed to record status history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrderByNumber(ctx, sessionID, orderNumber)
}

// Cancel cancels an order while the status machine still allows it
func (s *Service) Cancel(ctx context.Context, sessionID, orderNumber, reason string) (*Order, error) {
	if reason == "" {
		reason = "Cancelled by customer"
	}
	return s.UpdateStatus(ctx, sessionID, orderNumber, OrderStatusCancelled, reason)
}

// generateOrderNumber builds a unique order number.
// Format: ORD-YYYYMMDD-XXXXXXXX
func (s *Service) generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}

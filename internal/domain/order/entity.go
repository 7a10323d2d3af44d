// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/domain/checkout"
	"gorm.io/gorm"
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// DisplayName returns the human-readable status label
func (s OrderStatus) DisplayName() string {
	switch s {
	case OrderStatusPending:
		return "Order Pending"
	case OrderStatusConfirmed:
		return "Order Confirmed"
	case OrderStatusProcessing:
		return "Processing"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusDelivered:
		return "Delivered"
	case OrderStatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// Order represents a placed order. Once created everything but the
// status is frozen: items, addresses and payment data are snapshots
// taken at build time, and later catalog changes never flow back in.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"-"`
	OrderNumber string      `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	SessionID   string      `gorm:"index;size:64" json:"-"`
	UserID      int64       `gorm:"index" json:"user_id"`
	Status      OrderStatus `gorm:"not null;default:'pending'" json:"status"`

	Subtotal     decimal.Decimal `gorm:"type:numeric;not null" json:"subtotal"`
	Tax          decimal.Decimal `gorm:"type:numeric;not null" json:"tax"`
	ShippingCost decimal.Decimal `gorm:"type:numeric;not null" json:"shipping_cost"`
	Total        decimal.Decimal `gorm:"type:numeric;not null" json:"total"`

	ShippingAddress checkout.Address `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`

	// Payment snapshot. The raw card number is never persisted, only
	// its masked rendering.
	PaymentType      checkout.PaymentType `gorm:"size:20;not null" json:"payment_type"`
	MaskedCardNumber string               `gorm:"size:25" json:"masked_card_number,omitempty"`
	CardHolderName   string               `gorm:"size:100" json:"card_holder_name,omitempty"`

	EstimatedDelivery *time.Time     `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"-"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	Items         []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	StatusHistory []OrderStatusHistory `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"status_history,omitempty"`
}

// OrderItem represents one frozen line of an order
type OrderItem struct {
	ID            uint            `gorm:"primaryKey" json:"-"`
	OrderID       uint            `gorm:"not null;index" json:"-"`
	ProductID     int64           `gorm:"not null;index" json:"product_id"`
	ProductName   string          `gorm:"not null;size:255" json:"product_name"`
	ProductImage  string          `gorm:"size:512" json:"product_image"`
	Price         decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	SelectedSize  string          `gorm:"size:50" json:"selected_size,omitempty"`
	SelectedColor string          `gorm:"size:50" json:"selected_color,omitempty"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric;not null" json:"total_price"`
	CreatedAt     time.Time       `json:"-"`
}

// OrderStatusHistory tracks order status changes
type OrderStatusHistory struct {
	ID        uint        `gorm:"primaryKey" json:"-"`
	OrderID   uint        `gorm:"not null;index" json:"-"`
	Status    OrderStatus `gorm:"not null" json:"status"`
	Comment   string      `gorm:"type:text" json:"comment"`
	CreatedAt time.Time   `json:"created_at"`
}

// TableName overrides
func (Order) TableName() string              { return "orders" }
func (OrderItem) TableName() string          { return "order_items" }
func (OrderStatusHistory) TableName() string { return "order_status_history" }

// CanBeCancelled reports whether the status machine still allows a
// transition to cancelled.
func (o *Order) CanBeCancelled() bool {
	return CanTransition(o.Status, OrderStatusCancelled)
}

// AddStatusHistory appends a new status change to the history
func (o *Order) AddStatusHistory(status OrderStatus, comment string) {
	o.StatusHistory = append(o.StatusHistory, OrderStatusHistory{
		OrderID:   o.ID,
		Status:    status,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	})
}

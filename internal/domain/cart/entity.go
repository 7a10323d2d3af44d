// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/pricing"
)

var (
	// ErrInvalidQuantity is returned when an item is added with a
	// quantity below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrItemNotFound is returned when a quantity update targets a line
	// that is not in the cart.
	ErrItemNotFound = errors.New("item not found in cart")
)

// CartItem represents one line of a shopping cart. The embedded product
// is a snapshot taken at the time of add; later catalog changes do not
// flow into existing lines.
type CartItem struct {
	Product       catalog.Product `json:"product"`
	Quantity      int             `json:"quantity"`
	SelectedSize  string          `json:"selected_size,omitempty"`
	SelectedColor string          `json:"selected_color,omitempty"`
}

// TotalPrice returns the extended price of the line
func (i CartItem) TotalPrice() decimal.Decimal {
	return pricing.LineTotal(pricing.LineItem{UnitPrice: i.Product.Price, Quantity: i.Quantity})
}

// Cart represents the shopping cart of one session. ID stays zero until
// the cart has been persisted to the remote backend. Items keep
// insertion order; a (product, size, color) combination appears at most
// once.
type Cart struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Totals represents the derived monetary summary of a cart. It is
// always recomputed from the items, never stored.
type Totals struct {
	TotalItems int             `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
}

// New creates an empty cart for the given user
func New(userID int64) *Cart {
	now := time.Now().UTC()
	return &Cart{
		UserID:    userID,
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// AddItem appends a new line or, when a line with the same product id
// and size/color combination already exists, increments its quantity.
func (c *Cart) AddItem(product catalog.Product, quantity int, size, color string) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if i := c.findLine(product.ID, size, color); i >= 0 {
		c.Items[i].Quantity += quantity
	} else {
		c.Items = append(c.Items, CartItem{
			Product:       product,
			Quantity:      quantity,
			SelectedSize:  size,
			SelectedColor: color,
		})
	}

	c.UpdatedAt = time.Now().UTC()
	return nil
}

// SetQuantity updates the quantity of an existing line. A quantity
// below one removes the line instead of clamping it, so setting zero
// behaves exactly like RemoveItem on a present line.
func (c *Cart) SetQuantity(productID int64, size, color string, quantity int) error {
	i := c.findLine(productID, size, color)
	if i < 0 {
		return ErrItemNotFound
	}

	if quantity < 1 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	} else {
		c.Items[i].Quantity = quantity
	}

	c.UpdatedAt = time.Now().UTC()
	return nil
}

// RemoveItem removes the matching line. Removing an absent line is a
// no-op, never an error.
func (c *Cart) RemoveItem(productID int64, size, color string) {
	i := c.findLine(productID, size, color)
	if i < 0 {
		return
	}

	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	c.UpdatedAt = time.Now().UTC()
}

// Clear empties the cart. Used after a successful checkout.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.UpdatedAt = time.Now().UTC()
}

// Totals recomputes the monetary summary from the current items
func (c *Cart) Totals() Totals {
	lines := make([]pricing.LineItem, len(c.Items))
	totalItems := 0
	for i, item := range c.Items {
		lines[i] = pricing.LineItem{UnitPrice: item.Product.Price, Quantity: item.Quantity}
		totalItems += item.Quantity
	}

	subtotal := pricing.Subtotal(lines)
	tax := pricing.Tax(subtotal, pricing.DefaultTaxRate)

	return Totals{
		TotalItems: totalItems,
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      pricing.Total(subtotal, tax),
	}
}

// Clone returns a deep copy used for optimistic-update snapshots
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Items = make([]CartItem, len(c.Items))
	copy(clone.Items, c.Items)
	return &clone
}

// RemoteLines collapses the cart into its wire representation. The
// remote cart resource is variant-blind, so quantities of lines that
// share a product id are summed into one wire line.
func (c *Cart) RemoteLines() []catalog.RemoteCartLine {
	lines := make([]catalog.RemoteCartLine, 0, len(c.Items))
	index := make(map[int64]int, len(c.Items))

	for _, item := range c.Items {
		if i, ok := index[item.Product.ID]; ok {
			lines[i].Quantity += item.Quantity
			continue
		}
		index[item.Product.ID] = len(lines)
		lines = append(lines, catalog.RemoteCartLine{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	return lines
}

func (c *Cart) findLine(productID int64, size, color string) int {
	for i, item := range c.Items {
		if item.Product.ID == productID && item.SelectedSize == size && item.SelectedColor == color {
			return i
		}
	}
	return -1
}

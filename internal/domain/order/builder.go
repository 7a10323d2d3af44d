// internal/domain/order/builder.go
package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/pricing"
)

// Checkout precondition failures
var (
	ErrEmptyCart      = errors.New("cannot build an order from an empty cart")
	ErrInvalidAddress = errors.New("shipping address is incomplete")
	ErrInvalidPayment = errors.New("payment method is invalid")
)

// DefaultShippingCost is the flat shipping cost applied to every order
var DefaultShippingCost = decimal.NewFromFloat(9.99)

// Build transforms a validated cart plus shipping address and payment
// method into an immutable pending order. It has no side effects on the
// cart: callers clear the cart only after the order has been persisted.
// The order number and estimated delivery stay unset until persistence
// is confirmed.
func Build(c *cart.Cart, address checkout.Address, payment checkout.PaymentMethod) (*Order, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if !checkout.ValidateAddress(address) {
		return nil, ErrInvalidAddress
	}
	if !checkout.ValidatePaymentMethod(payment) {
		return nil, ErrInvalidPayment
	}

	if address.Country == "" {
		address.Country = checkout.DefaultCountry
	}
	payment.Type = checkout.NormalizePaymentType(payment.Type)

	items := make([]OrderItem, len(c.Items))
	for i, line := range c.Items {
		items[i] = OrderItem{
			ProductID:     line.Product.ID,
			ProductName:   line.Product.Title,
			ProductImage:  line.Product.Image,
			Price:         line.Product.Price,
			Quantity:      line.Quantity,
			SelectedSize:  line.SelectedSize,
			SelectedColor: line.SelectedColor,
			TotalPrice:    line.TotalPrice(),
		}
	}

	totals := c.Totals()

	return &Order{
		SessionID:        "",
		UserID:           c.UserID,
		Status:           OrderStatusPending,
		Subtotal:         totals.Subtotal,
		Tax:              totals.Tax,
		ShippingCost:     DefaultShippingCost,
		Total:            pricing.Total(totals.Subtotal, totals.Tax, DefaultShippingCost),
		ShippingAddress:  address,
		PaymentType:      payment.Type,
		MaskedCardNumber: payment.MaskedCardNumber(),
		CardHolderName:   payment.CardHolderName,
		CreatedAt:        time.Now().UTC(),
		Items:            items,
	}, nil
}

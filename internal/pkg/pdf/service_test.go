package pdf

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/order"
)

func TestGenerateHTML(t *testing.T) {
	cfg := &config.Config{
		Invoice: config.InvoiceConfig{
			CompanyName:  "Storefront Inc.",
			CompanyEmail: "billing@example.com",
		},
	}
	svc := NewService(cfg)

	o := &order.Order{
		OrderNumber:  "ORD-20260828-ABCD1234",
		Status:       order.OrderStatusPending,
		Subtotal:     decimal.NewFromFloat(100.00),
		Tax:          decimal.NewFromFloat(8.00),
		ShippingCost: decimal.NewFromFloat(9.99),
		Total:        decimal.NewFromFloat(117.99),
		ShippingAddress: checkout.Address{
			FirstName:    "Jane",
			LastName:     "Doe",
			AddressLine1: "1 Main St",
			City:         "Springfield",
			State:        "IL",
			ZipCode:      "62704",
			Country:      checkout.DefaultCountry,
		},
		PaymentType:      checkout.PaymentTypeCreditCard,
		MaskedCardNumber: "**** **** **** 1111",
		CreatedAt:        time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		Items: []order.OrderItem{
			{
				ProductName: "Backpack",
				Quantity:    2,
				Price:       decimal.NewFromFloat(50.00),
				TotalPrice:  decimal.NewFromFloat(100.00),
			},
		},
	}

	html, err := svc.generateHTML(InvoiceData{
		InvoiceNumber: "INV-" + o.OrderNumber,
		InvoiceDate:   "August 28, 2026",
		Order:         o,
		StatusLabel:   o.Status.DisplayName(),
		PaymentLabel:  o.PaymentType.DisplayName(),
		Company: CompanyInfo{
			Name:  cfg.Invoice.CompanyName,
			Email: cfg.Invoice.CompanyEmail,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"INV-ORD-20260828-ABCD1234",
		"Jane Doe",
		"**** **** **** 1111",
		"$117.99",
		"Backpack",
		"Order Pending",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected invoice HTML to contain %q", want)
		}
	}
}

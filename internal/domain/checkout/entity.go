// internal/domain/checkout/entity.go
package checkout

import (
	"fmt"
	"strings"
)

// Address represents a shipping or billing address
type Address struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`
	PhoneNumber  string `json:"phone_number,omitempty"`
}

// DefaultCountry is assumed when no country is provided
const DefaultCountry = "United States"

// FullName returns the trimmed concatenation of first and last name
func (a Address) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// PaymentType identifies how an order is paid
type PaymentType string

const (
	PaymentTypeCreditCard PaymentType = "credit_card"
	PaymentTypePayPal     PaymentType = "paypal"
	PaymentTypeApplePay   PaymentType = "apple_pay"
	PaymentTypeGooglePay  PaymentType = "google_pay"
)

// DisplayName returns the human-readable payment type label
func (t PaymentType) DisplayName() string {
	switch t {
	case PaymentTypeCreditCard:
		return "Credit Card"
	case PaymentTypePayPal:
		return "PayPal"
	case PaymentTypeApplePay:
		return "Apple Pay"
	case PaymentTypeGooglePay:
		return "Google Pay"
	default:
		return string(t)
	}
}

// PaymentMethod represents payment instrument data collected at
// checkout. Only validated here, never charged.
type PaymentMethod struct {
	Type           PaymentType `json:"type"`
	CardNumber     string      `json:"card_number,omitempty"`
	ExpiryMonth    int         `json:"expiry_month,omitempty"`
	ExpiryYear     int         `json:"expiry_year,omitempty"`
	CVV            string      `json:"cvv,omitempty"`
	CardHolderName string      `json:"card_holder_name,omitempty"`
	BillingAddress *Address    `json:"billing_address,omitempty"`
}

// MaskedCardNumber renders the card number with all but the last four
// digits hidden. Numbers shorter than four characters are returned
// as-is; they never validate anyway.
func (p PaymentMethod) MaskedCardNumber() string {
	if len(p.CardNumber) >= 4 {
		return fmt.Sprintf("**** **** **** %s", p.CardNumber[len(p.CardNumber)-4:])
	}
	return p.CardNumber
}

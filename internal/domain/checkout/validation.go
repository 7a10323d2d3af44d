// internal/domain/checkout/validation.go
package checkout

import "strings"

// Pure predicates gating checkout eligibility. They report what is
// valid, not why; field-level diagnostics belong to the caller.

// minCreditCardExpiryYear is the oldest accepted card expiry year
const minCreditCardExpiryYear = 2024

// DefaultPaymentType is assumed when a payment method carries no type
// tag. Only genuinely unknown tags are invalid.
const DefaultPaymentType = PaymentTypeCreditCard

// NormalizePaymentType resolves an absent type tag to the default
func NormalizePaymentType(t PaymentType) PaymentType {
	if t == "" {
		return DefaultPaymentType
	}
	return t
}

// ValidateAddress reports whether an address is complete enough to
// ship to. Line 2, country and phone number are optional; every other
// field must be non-blank (whitespace-only counts as blank).
func ValidateAddress(a Address) bool {
	return notBlank(a.FirstName) &&
		notBlank(a.LastName) &&
		notBlank(a.AddressLine1) &&
		notBlank(a.City) &&
		notBlank(a.State) &&
		notBlank(a.ZipCode)
}

// paymentRules maps each payment type to its validation rule. Wallet
// providers validate their own credentials out-of-band, so everything
// but credit cards passes unconditionally.
var paymentRules = map[PaymentType]func(PaymentMethod) bool{
	PaymentTypeCreditCard: validateCreditCard,
	PaymentTypePayPal:     func(PaymentMethod) bool { return true },
	PaymentTypeApplePay:   func(PaymentMethod) bool { return true },
	PaymentTypeGooglePay:  func(PaymentMethod) bool { return true },
}

// ValidatePaymentMethod reports whether a payment method carries all
// data its type requires. An omitted type means credit card; unknown
// types are invalid.
func ValidatePaymentMethod(p PaymentMethod) bool {
	rule, ok := paymentRules[NormalizePaymentType(p.Type)]
	if !ok {
		return false
	}
	return rule(p)
}

func validateCreditCard(p PaymentMethod) bool {
	return len(p.CardNumber) >= 13 &&
		p.ExpiryMonth >= 1 && p.ExpiryMonth <= 12 &&
		p.ExpiryYear >= minCreditCardExpiryYear &&
		(len(p.CVV) == 3 || len(p.CVV) == 4) &&
		notBlank(p.CardHolderName)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

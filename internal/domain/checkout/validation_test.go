package checkout

import "testing"

func validAddress() Address {
	return Address{
		FirstName:    "Jane",
		LastName:     "Doe",
		AddressLine1: "1 Main St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "12345",
		Country:      DefaultCountry,
	}
}

func TestValidateAddress(t *testing.T) {
	t.Run("complete address is valid", func(t *testing.T) {
		if !ValidateAddress(validAddress()) {
			t.Fatal("expected address to be valid")
		}
	})

	t.Run("blank first name is invalid", func(t *testing.T) {
		a := validAddress()
		a.FirstName = ""
		if ValidateAddress(a) {
			t.Fatal("expected address to be invalid")
		}
	})

	t.Run("whitespace-only counts as blank", func(t *testing.T) {
		a := validAddress()
		a.ZipCode = "   "
		if ValidateAddress(a) {
			t.Fatal("expected address to be invalid")
		}
	})

	t.Run("line 2 and phone are optional", func(t *testing.T) {
		a := validAddress()
		a.AddressLine2 = ""
		a.PhoneNumber = ""
		if !ValidateAddress(a) {
			t.Fatal("expected address to be valid without optional fields")
		}
	})
}

func validCard() PaymentMethod {
	return PaymentMethod{
		Type:           PaymentTypeCreditCard,
		CardNumber:     "4111111111111", // 13 digits
		ExpiryMonth:    12,
		ExpiryYear:     2026,
		CVV:            "123",
		CardHolderName: "Jane Doe",
	}
}

func TestValidatePaymentMethod(t *testing.T) {
	t.Run("13-digit card with valid fields is valid", func(t *testing.T) {
		if !ValidatePaymentMethod(validCard()) {
			t.Fatal("expected payment method to be valid")
		}
	})

	t.Run("12-digit card number is invalid", func(t *testing.T) {
		p := validCard()
		p.CardNumber = "411111111111"
		if ValidatePaymentMethod(p) {
			t.Fatal("expected payment method to be invalid")
		}
	})

	t.Run("expiry month out of range is invalid", func(t *testing.T) {
		p := validCard()
		p.ExpiryMonth = 13
		if ValidatePaymentMethod(p) {
			t.Fatal("expected payment method to be invalid")
		}
	})

	t.Run("expiry year before 2024 is invalid", func(t *testing.T) {
		p := validCard()
		p.ExpiryYear = 2023
		if ValidatePaymentMethod(p) {
			t.Fatal("expected payment method to be invalid")
		}
	})

	t.Run("cvv length outside 3..4 is invalid", func(t *testing.T) {
		p := validCard()
		p.CVV = "12"
		if ValidatePaymentMethod(p) {
			t.Fatal("expected payment method to be invalid")
		}
	})

	t.Run("paypal with all other fields blank is valid", func(t *testing.T) {
		if !ValidatePaymentMethod(PaymentMethod{Type: PaymentTypePayPal}) {
			t.Fatal("expected wallet payment to be valid")
		}
	})

	t.Run("unknown type is invalid", func(t *testing.T) {
		if ValidatePaymentMethod(PaymentMethod{Type: "bitcoin"}) {
			t.Fatal("expected unknown payment type to be invalid")
		}
	})

	t.Run("omitted type defaults to credit card", func(t *testing.T) {
		p := validCard()
		p.Type = ""
		if !ValidatePaymentMethod(p) {
			t.Fatal("expected typeless valid card to be valid")
		}
	})

	t.Run("omitted type still requires valid card data", func(t *testing.T) {
		if ValidatePaymentMethod(PaymentMethod{CardNumber: "4111"}) {
			t.Fatal("expected typeless invalid card to be invalid")
		}
	})
}

func TestNormalizePaymentType(t *testing.T) {
	if got := NormalizePaymentType(""); got != PaymentTypeCreditCard {
		t.Fatalf("expected credit card default, got %q", got)
	}
	if got := NormalizePaymentType(PaymentTypePayPal); got != PaymentTypePayPal {
		t.Fatalf("expected paypal to pass through, got %q", got)
	}
}

func TestMaskedCardNumber(t *testing.T) {
	t.Run("long numbers show last four only", func(t *testing.T) {
		p := PaymentMethod{CardNumber: "4111111111111234"}
		if got := p.MaskedCardNumber(); got != "**** **** **** 1234" {
			t.Fatalf("unexpected masked number: %q", got)
		}
	})

	t.Run("short numbers pass through unmasked", func(t *testing.T) {
		p := PaymentMethod{CardNumber: "123"}
		if got := p.MaskedCardNumber(); got != "123" {
			t.Fatalf("unexpected masked number: %q", got)
		}
	})
}

func TestFullName(t *testing.T) {
	t.Run("trims missing parts", func(t *testing.T) {
		a := Address{FirstName: "Jane"}
		if got := a.FullName(); got != "Jane" {
			t.Fatalf("unexpected full name: %q", got)
		}
	})
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomerDetails() CheckoutForm {
	return CheckoutForm{
		FirstName: "Kwame",
		LastName:  "Mensah",
		Email:     "kwame@example.com",
		Phone:     "0241234567",
	}
}

func validShipping() CheckoutForm {
	return CheckoutForm{
		Address:        "14 Independence Avenue",
		City:           "Accra",
		Region:         "Greater Accra",
		PostalCode:     "GA-145",
		Country:        "Ghana",
		ShippingMethod: ShippingStandard,
	}
}

func validCardPayment() CheckoutForm {
	return CheckoutForm{
		PaymentMethod: PaymentCard,
		CardNumber:    "4242 4242 4242 4242",
		CardName:      "Kwame Mensah",
		CardExpiry:    "12/27",
		CardCVV:       "123",
	}
}

func TestValidateCustomerDetails(t *testing.T) {
	t.Run("accepts a complete form", func(t *testing.T) {
		assert.Empty(t, ValidateCustomerDetails(validCustomerDetails()))
	})

	t.Run("requires every field", func(t *testing.T) {
		errs := ValidateCustomerDetails(CheckoutForm{})

		assert.Equal(t, "First name is required", errs["first_name"])
		assert.Equal(t, "Last name is required", errs["last_name"])
		assert.Equal(t, "Email is required", errs["email"])
		assert.Equal(t, "Phone number is required", errs["phone"])
	})

	t.Run("rejects one-character names", func(t *testing.T) {
		form := validCustomerDetails()
		form.FirstName = "K"

		errs := ValidateCustomerDetails(form)
		assert.Equal(t, "First name must be at least 2 characters", errs["first_name"])
	})

	t.Run("rejects malformed emails", func(t *testing.T) {
		for _, email := range []string{"kwame", "kwame@", "kwame@example", "kw ame@example.com"} {
			form := validCustomerDetails()
			form.Email = email

			errs := ValidateCustomerDetails(form)
			assert.Equal(t, "Please enter a valid email address", errs["email"], "email %q", email)
		}
	})

	t.Run("accepts both Ghana phone formats", func(t *testing.T) {
		for _, phone := range []string{"0241234567", "+233241234567", "024 123 4567"} {
			form := validCustomerDetails()
			form.Phone = phone

			assert.Empty(t, ValidateCustomerDetails(form), "phone %q", phone)
		}
	})

	t.Run("rejects non-Ghana phone numbers", func(t *testing.T) {
		for _, phone := range []string{"12345", "+14155551234", "024123456"} {
			form := validCustomerDetails()
			form.Phone = phone

			errs := ValidateCustomerDetails(form)
			assert.Equal(t, "Please enter a valid Ghana phone number", errs["phone"], "phone %q", phone)
		}
	})
}

func TestValidateShipping(t *testing.T) {
	t.Run("accepts a complete form", func(t *testing.T) {
		assert.Empty(t, ValidateShipping(validShipping()))
	})

	t.Run("requires a complete address", func(t *testing.T) {
		form := validShipping()
		form.Address = "14"

		errs := ValidateShipping(form)
		assert.Equal(t, "Please enter a complete address", errs["address"])
	})

	t.Run("validates the postal code shape", func(t *testing.T) {
		form := validShipping()
		form.PostalCode = "!!"

		errs := ValidateShipping(form)
		assert.Equal(t, "Please enter a valid postal code", errs["postal_code"])
	})

	t.Run("postal code is case insensitive", func(t *testing.T) {
		form := validShipping()
		form.PostalCode = "ga-145"

		assert.Empty(t, ValidateShipping(form))
	})

	t.Run("requires a known shipping method", func(t *testing.T) {
		form := validShipping()
		form.ShippingMethod = "overnight"

		errs := ValidateShipping(form)
		assert.Equal(t, "Please select a shipping method", errs["shipping_method"])
	})
}

func TestValidatePayment(t *testing.T) {
	t.Run("card payment checks all card fields", func(t *testing.T) {
		errs := ValidatePayment(CheckoutForm{PaymentMethod: PaymentCard})

		assert.Equal(t, "Card number is required", errs["card_number"])
		assert.Equal(t, "Cardholder name is required", errs["card_name"])
		assert.Equal(t, "Expiry date is required", errs["card_expiry"])
		assert.Equal(t, "CVV is required", errs["card_cvv"])
	})

	t.Run("card number allows spaces", func(t *testing.T) {
		assert.Empty(t, ValidatePayment(validCardPayment()))
	})

	t.Run("card number length is bounded", func(t *testing.T) {
		form := validCardPayment()
		form.CardNumber = "411111111111" // 12 digits

		errs := ValidatePayment(form)
		assert.Equal(t, "Please enter a valid card number", errs["card_number"])
	})

	t.Run("expiry must be MM/YY", func(t *testing.T) {
		form := validCardPayment()
		form.CardExpiry = "2027-12"

		errs := ValidatePayment(form)
		assert.Equal(t, "Please enter a valid expiry date (MM/YY)", errs["card_expiry"])
	})

	t.Run("mobile money checks provider and number", func(t *testing.T) {
		errs := ValidatePayment(CheckoutForm{PaymentMethod: PaymentMobileMoney})

		assert.Equal(t, "Mobile money provider is required", errs["mobile_money_provider"])
		assert.Equal(t, "Mobile money number is required", errs["mobile_money_number"])

		assert.Empty(t, ValidatePayment(CheckoutForm{
			PaymentMethod:       PaymentMobileMoney,
			MobileMoneyProvider: "MTN",
			MobileMoneyNumber:   "0551234567",
		}))
	})

	t.Run("bank transfer needs nothing else", func(t *testing.T) {
		assert.Empty(t, ValidatePayment(CheckoutForm{PaymentMethod: PaymentBankTransfer}))
	})

	t.Run("unknown payment method is rejected", func(t *testing.T) {
		errs := ValidatePayment(CheckoutForm{PaymentMethod: "cheque"})

		assert.Equal(t, "Please select a payment method", errs["payment_method"])
	})
}

func TestCheckoutSession(t *testing.T) {
	t.Run("starts at customer details with defaults", func(t *testing.T) {
		session := newCheckoutSession()

		assert.Equal(t, StepCustomerDetails, session.Step())
		form := session.Form()
		assert.Equal(t, "Ghana", form.Country)
		assert.Equal(t, ShippingStandard, form.ShippingMethod)
		assert.Equal(t, PaymentCard, form.PaymentMethod)
	})

	t.Run("advances through all three steps", func(t *testing.T) {
		session := newCheckoutSession()

		step, errs := session.Submit(validCustomerDetails())
		require.Empty(t, errs)
		assert.Equal(t, StepShipping, step)

		step, errs = session.Submit(validShipping())
		require.Empty(t, errs)
		assert.Equal(t, StepPaymentSummary, step)

		step, errs = session.Submit(validCardPayment())
		require.Empty(t, errs)
		assert.Equal(t, StepPaymentSummary, step)

		assert.True(t, session.ReadyToPlaceOrder())
	})

	t.Run("stays on the step when validation fails", func(t *testing.T) {
		session := newCheckoutSession()

		step, errs := session.Submit(CheckoutForm{FirstName: "Kwame"})
		assert.Equal(t, StepCustomerDetails, step)
		assert.NotEmpty(t, errs)
	})

	t.Run("keeps earlier fields across steps", func(t *testing.T) {
		session := newCheckoutSession()
		session.Submit(validCustomerDetails())
		session.Submit(validShipping())

		form := session.Form()
		assert.Equal(t, "Kwame", form.FirstName)
		assert.Equal(t, "Accra", form.City)
	})

	t.Run("back never goes past the first step", func(t *testing.T) {
		session := newCheckoutSession()
		session.Submit(validCustomerDetails())

		assert.Equal(t, StepCustomerDetails, session.Back())
		assert.Equal(t, StepCustomerDetails, session.Back())
	})

	t.Run("back preserves entered data", func(t *testing.T) {
		session := newCheckoutSession()
		session.Submit(validCustomerDetails())
		session.Back()

		assert.Equal(t, "kwame@example.com", session.Form().Email)
	})

	t.Run("not ready before reaching the final step", func(t *testing.T) {
		session := newCheckoutSession()
		session.Submit(validCustomerDetails())

		assert.False(t, session.ReadyToPlaceOrder())
	})
}

func TestCheckoutManager(t *testing.T) {
	manager := NewCheckoutManager()

	_, found := manager.Get("user-a")
	assert.False(t, found)

	session := manager.Start("user-a")
	got, found := manager.Get("user-a")
	require.True(t, found)
	assert.Same(t, session, got)

	// Starting again resets progress.
	session.Submit(validCustomerDetails())
	fresh := manager.Start("user-a")
	assert.Equal(t, StepCustomerDetails, fresh.Step())

	manager.Finish("user-a")
	_, found = manager.Get("user-a")
	assert.False(t, found)
}

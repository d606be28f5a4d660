package services

import (
	"regexp"
	"strings"
	"sync"
)

// Checkout steps, strictly linear.
type CheckoutStep int

const (
	StepCustomerDetails CheckoutStep = 1
	StepShipping        CheckoutStep = 2
	StepPaymentSummary  CheckoutStep = 3
)

// Payment methods accepted at step three.
const (
	PaymentCard         = "card"
	PaymentMobileMoney  = "mobile_money"
	PaymentBankTransfer = "bank_transfer"
)

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	ghanaPhonePattern = regexp.MustCompile(`^(\+233|0)[0-9]{9}$`)
	postalCodePattern = regexp.MustCompile(`(?i)^[A-Z0-9\s-]{3,10}$`)
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	cardExpiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cardCVVPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// CheckoutForm carries every field collected across the three steps.
type CheckoutForm struct {
	// Customer details
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	// Shipping
	Address        string `json:"address"`
	City           string `json:"city"`
	Region         string `json:"region"`
	PostalCode     string `json:"postal_code"`
	Country        string `json:"country"`
	ShippingMethod string `json:"shipping_method"`

	// Payment
	PaymentMethod       string `json:"payment_method"`
	CardNumber          string `json:"card_number"`
	CardName            string `json:"card_name"`
	CardExpiry          string `json:"card_expiry"`
	CardCVV             string `json:"card_cvv"`
	MobileMoneyProvider string `json:"mobile_money_provider"`
	MobileMoneyNumber   string `json:"mobile_money_number"`
}

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

// ValidateCustomerDetails checks the step-one fields.
func ValidateCustomerDetails(form CheckoutForm) FieldErrors {
	errs := FieldErrors{}

	firstName := strings.TrimSpace(form.FirstName)
	if firstName == "" {
		errs["first_name"] = "First name is required"
	} else if len(firstName) < 2 {
		errs["first_name"] = "First name must be at least 2 characters"
	}

	lastName := strings.TrimSpace(form.LastName)
	if lastName == "" {
		errs["last_name"] = "Last name is required"
	} else if len(lastName) < 2 {
		errs["last_name"] = "Last name must be at least 2 characters"
	}

	email := strings.TrimSpace(form.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Please enter a valid email address"
	}

	phone := strings.TrimSpace(form.Phone)
	if phone == "" {
		errs["phone"] = "Phone number is required"
	} else if !ghanaPhonePattern.MatchString(stripSpaces(phone)) {
		errs["phone"] = "Please enter a valid Ghana phone number"
	}

	return errs
}

// ValidateShipping checks the step-two fields.
func ValidateShipping(form CheckoutForm) FieldErrors {
	errs := FieldErrors{}

	address := strings.TrimSpace(form.Address)
	if address == "" {
		errs["address"] = "Address is required"
	} else if len(address) < 5 {
		errs["address"] = "Please enter a complete address"
	}

	if strings.TrimSpace(form.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(form.Region) == "" {
		errs["region"] = "Region is required"
	}

	postalCode := strings.TrimSpace(form.PostalCode)
	if postalCode == "" {
		errs["postal_code"] = "Postal code is required"
	} else if !postalCodePattern.MatchString(postalCode) {
		errs["postal_code"] = "Please enter a valid postal code"
	}

	if form.ShippingMethod != ShippingStandard && form.ShippingMethod != ShippingExpress {
		errs["shipping_method"] = "Please select a shipping method"
	}

	return errs
}

// ValidatePayment checks the step-three fields according to the selected
// payment method. Bank transfer needs nothing beyond the method itself.
func ValidatePayment(form CheckoutForm) FieldErrors {
	errs := FieldErrors{}

	switch form.PaymentMethod {
	case PaymentCard:
		cardNumber := stripSpaces(form.CardNumber)
		if cardNumber == "" {
			errs["card_number"] = "Card number is required"
		} else if !cardNumberPattern.MatchString(cardNumber) {
			errs["card_number"] = "Please enter a valid card number"
		}

		if strings.TrimSpace(form.CardName) == "" {
			errs["card_name"] = "Cardholder name is required"
		}

		if strings.TrimSpace(form.CardExpiry) == "" {
			errs["card_expiry"] = "Expiry date is required"
		} else if !cardExpiryPattern.MatchString(form.CardExpiry) {
			errs["card_expiry"] = "Please enter a valid expiry date (MM/YY)"
		}

		if strings.TrimSpace(form.CardCVV) == "" {
			errs["card_cvv"] = "CVV is required"
		} else if !cardCVVPattern.MatchString(form.CardCVV) {
			errs["card_cvv"] = "Please enter a valid CVV"
		}

	case PaymentMobileMoney:
		if strings.TrimSpace(form.MobileMoneyProvider) == "" {
			errs["mobile_money_provider"] = "Mobile money provider is required"
		}

		number := strings.TrimSpace(form.MobileMoneyNumber)
		if number == "" {
			errs["mobile_money_number"] = "Mobile money number is required"
		} else if !ghanaPhonePattern.MatchString(stripSpaces(number)) {
			errs["mobile_money_number"] = "Please enter a valid phone number"
		}

	case PaymentBankTransfer:
		// Nothing to validate; the order is processed once payment clears.

	default:
		errs["payment_method"] = "Please select a payment method"
	}

	return errs
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// CheckoutSession tracks one customer's progress through the three steps.
// Forward movement is gated on the current step's validation; moving back
// to a prior step is always allowed.
type CheckoutSession struct {
	mu   sync.Mutex
	step CheckoutStep
	form CheckoutForm
}

func newCheckoutSession() *CheckoutSession {
	return &CheckoutSession{
		step: StepCustomerDetails,
		form: CheckoutForm{
			Country:        "Ghana",
			ShippingMethod: ShippingStandard,
			PaymentMethod:  PaymentCard,
		},
	}
}

// Step returns the current step.
func (s *CheckoutSession) Step() CheckoutStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Form returns a copy of the current form data.
func (s *CheckoutSession) Form() CheckoutForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Submit merges the given form fields into the session and attempts to
// advance past the current step. On validation failure the session stays
// where it is and the field errors are returned.
func (s *CheckoutSession) Submit(form CheckoutForm) (CheckoutStep, FieldErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.merge(form)

	var errs FieldErrors
	switch s.step {
	case StepCustomerDetails:
		errs = ValidateCustomerDetails(s.form)
	case StepShipping:
		errs = ValidateShipping(s.form)
	case StepPaymentSummary:
		errs = ValidatePayment(s.form)
	}

	if len(errs) > 0 {
		return s.step, errs
	}

	if s.step < StepPaymentSummary {
		s.step++
	}
	return s.step, nil
}

// Back moves to the previous step when there is one.
func (s *CheckoutSession) Back() CheckoutStep {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step > StepCustomerDetails {
		s.step--
	}
	return s.step
}

// ReadyToPlaceOrder reports whether every step has passed validation.
func (s *CheckoutSession) ReadyToPlaceOrder() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepPaymentSummary {
		return false
	}
	return len(ValidateCustomerDetails(s.form)) == 0 &&
		len(ValidateShipping(s.form)) == 0 &&
		len(ValidatePayment(s.form)) == 0
}

// merge copies non-empty incoming fields over the stored form. Callers
// hold the lock.
func (s *CheckoutSession) merge(in CheckoutForm) {
	fields := []struct {
		dst *string
		src string
	}{
		{&s.form.FirstName, in.FirstName},
		{&s.form.LastName, in.LastName},
		{&s.form.Email, in.Email},
		{&s.form.Phone, in.Phone},
		{&s.form.Address, in.Address},
		{&s.form.City, in.City},
		{&s.form.Region, in.Region},
		{&s.form.PostalCode, in.PostalCode},
		{&s.form.Country, in.Country},
		{&s.form.ShippingMethod, in.ShippingMethod},
		{&s.form.PaymentMethod, in.PaymentMethod},
		{&s.form.CardNumber, in.CardNumber},
		{&s.form.CardName, in.CardName},
		{&s.form.CardExpiry, in.CardExpiry},
		{&s.form.CardCVV, in.CardCVV},
		{&s.form.MobileMoneyProvider, in.MobileMoneyProvider},
		{&s.form.MobileMoneyNumber, in.MobileMoneyNumber},
	}
	for _, f := range fields {
		if f.src != "" {
			*f.dst = f.src
		}
	}
}

// CheckoutManager owns the live checkout sessions, one per cart session.
type CheckoutManager struct {
	mu       sync.Mutex
	sessions map[string]*CheckoutSession
}

func NewCheckoutManager() *CheckoutManager {
	return &CheckoutManager{sessions: make(map[string]*CheckoutSession)}
}

// Start begins a fresh checkout for the session, discarding any previous
// progress.
func (m *CheckoutManager) Start(sessionID string) *CheckoutSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := newCheckoutSession()
	m.sessions[sessionID] = session
	return session
}

// Get returns the in-progress checkout for the session, if any.
func (m *CheckoutManager) Get(sessionID string) (*CheckoutSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	return session, ok
}

// Finish drops the session's checkout after an order is placed or
// abandoned.
func (m *CheckoutManager) Finish(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

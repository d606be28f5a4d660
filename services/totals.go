package services

// Shipping methods offered at checkout.
const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"
)

// Pricing policy constants.
const (
	FlatDiscount          = 10.0
	StandardShippingFee   = 9.99
	ExpressShippingFee    = 19.99
	FreeShippingThreshold = 100.0
	TaxRate               = 0.08
)

// OrderTotals is the checkout-ready breakdown derived from a cart.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// CalculateOrderTotals derives discount, shipping, tax and grand total from
// the cart subtotal and item count. Express shipping charges its flat fee
// regardless of subtotal; standard shipping is free above the threshold.
// The total is intentionally not floored at zero: a cart whose flat
// discount exceeds its subtotal yields a negative total.
func CalculateOrderTotals(subtotal float64, itemCount int, shippingMethod string) OrderTotals {
	discount := 0.0
	if itemCount > 0 {
		discount = FlatDiscount
	}

	shipping := 0.0
	switch {
	case shippingMethod == ShippingExpress:
		shipping = ExpressShippingFee
	case subtotal > FreeShippingThreshold:
		shipping = 0
	case itemCount > 0:
		shipping = StandardShippingFee
	}

	tax := subtotal * TaxRate

	return OrderTotals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal - discount + shipping + tax,
	}
}

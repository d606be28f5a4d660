package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOrderTotals(t *testing.T) {
	t.Run("empty cart has no charges at all", func(t *testing.T) {
		totals := CalculateOrderTotals(0, 0, ShippingStandard)

		assert.Equal(t, 0.0, totals.Subtotal)
		assert.Equal(t, 0.0, totals.Discount)
		assert.Equal(t, 0.0, totals.Shipping)
		assert.Equal(t, 0.0, totals.Tax)
		assert.Equal(t, 0.0, totals.Total)
	})

	t.Run("non-empty cart gets the flat discount", func(t *testing.T) {
		totals := CalculateOrderTotals(50, 1, ShippingStandard)

		assert.Equal(t, FlatDiscount, totals.Discount)
	})

	t.Run("standard shipping below threshold charges the fee", func(t *testing.T) {
		totals := CalculateOrderTotals(99.99, 2, ShippingStandard)

		assert.Equal(t, StandardShippingFee, totals.Shipping)
	})

	t.Run("standard shipping above threshold is free", func(t *testing.T) {
		totals := CalculateOrderTotals(100.01, 2, ShippingStandard)

		assert.Equal(t, 0.0, totals.Shipping)
	})

	t.Run("subtotal exactly at threshold still pays shipping", func(t *testing.T) {
		totals := CalculateOrderTotals(FreeShippingThreshold, 2, ShippingStandard)

		assert.Equal(t, StandardShippingFee, totals.Shipping)
	})

	t.Run("express shipping charges its fee regardless of subtotal", func(t *testing.T) {
		low := CalculateOrderTotals(20, 1, ShippingExpress)
		high := CalculateOrderTotals(500, 3, ShippingExpress)

		assert.Equal(t, ExpressShippingFee, low.Shipping)
		assert.Equal(t, ExpressShippingFee, high.Shipping)
	})

	t.Run("tax is eight percent of the subtotal", func(t *testing.T) {
		totals := CalculateOrderTotals(200, 2, ShippingStandard)

		assert.InDelta(t, 16.0, totals.Tax, 1e-9)
	})

	t.Run("total sums subtotal minus discount plus shipping plus tax", func(t *testing.T) {
		totals := CalculateOrderTotals(150, 3, ShippingExpress)

		expected := 150.0 - FlatDiscount + ExpressShippingFee + 150.0*TaxRate
		assert.InDelta(t, expected, totals.Total, 1e-9)
	})

	t.Run("worked example: 150 standard comes to 152", func(t *testing.T) {
		// 150 - 10 discount + free shipping + 12 tax.
		totals := CalculateOrderTotals(150, 2, ShippingStandard)

		assert.InDelta(t, 152.0, totals.Total, 1e-9)
	})

	t.Run("total is not floored at zero", func(t *testing.T) {
		// A free (zero-priced) promo item still triggers the discount
		// and shipping, so the grand total goes negative.
		totals := CalculateOrderTotals(0, 1, ShippingStandard)

		assert.InDelta(t, -FlatDiscount+StandardShippingFee, totals.Total, 1e-9)
		assert.Negative(t, totals.Total)
	})
}

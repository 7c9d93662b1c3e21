package invoicing_test

import (
	"testing"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/utils/invoicing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLineAmount(t *testing.T) {
	amount, err := invoicing.LineAmount(d("2"), d("10"))
	require.NoError(t, err)
	assert.True(t, amount.Equal(d("20")), "expected 20, got %s", amount)

	amount, err = invoicing.LineAmount(d("0.5"), d("3.30"))
	require.NoError(t, err)
	assert.True(t, amount.Equal(d("1.65")), "expected 1.65, got %s", amount)
}

func TestLineAmount_RejectsZeroOrNegativeQuantity(t *testing.T) {
	_, err := invoicing.LineAmount(d("0"), d("10"))
	assert.Error(t, err)

	_, err = invoicing.LineAmount(d("-1"), d("10"))
	assert.Error(t, err)
}

func TestLineAmount_RejectsNegativeUnitPrice(t *testing.T) {
	_, err := invoicing.LineAmount(d("1"), d("-0.01"))
	assert.Error(t, err)
}

func TestComputeTotals(t *testing.T) {
	items := []domain.InvoiceItem{
		{Description: "Widgets", Quantity: d("2"), UnitPrice: d("10")},
		{Description: "Shipping", Quantity: d("1"), UnitPrice: d("5")},
	}

	totals, err := invoicing.ComputeTotals(items, d("10"), d("2"))
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(d("25")), "subtotal: %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(d("2.5")), "tax: %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(d("25.5")), "total: %s", totals.Total)

	// Item amounts are overwritten in place.
	assert.True(t, items[0].Amount.Equal(d("20")))
	assert.True(t, items[1].Amount.Equal(d("5")))
}

func TestComputeTotals_Idempotent(t *testing.T) {
	items := []domain.InvoiceItem{
		// A stale amount from a previous computation must not survive.
		{Description: "Widgets", Quantity: d("3"), UnitPrice: d("4"), Amount: d("999")},
	}

	first, err := invoicing.ComputeTotals(items, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	second, err := invoicing.ComputeTotals(items, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, items[0].Amount.Equal(d("12")))
}

func TestComputeTotals_DiscountMayExceedTotal(t *testing.T) {
	items := []domain.InvoiceItem{
		{Description: "Token fee", Quantity: d("1"), UnitPrice: d("5")},
	}

	totals, err := invoicing.ComputeTotals(items, decimal.Zero, d("10"))
	require.NoError(t, err)
	assert.True(t, totals.Total.Equal(d("-5")), "total: %s", totals.Total)
}

func TestComputeTotals_RejectsInvalidItem(t *testing.T) {
	items := []domain.InvoiceItem{
		{Description: "Widgets", Quantity: d("1"), UnitPrice: d("10")},
		{Description: "Broken", Quantity: d("0"), UnitPrice: d("10")},
	}

	_, err := invoicing.ComputeTotals(items, decimal.Zero, decimal.Zero)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 2")
}

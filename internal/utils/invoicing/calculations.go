package invoicing

import (
	"fmt"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Totals holds the derived numeric fields of an invoice.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// LineAmount computes the amount of a single line item as quantity * unitPrice.
// Inputs violating the item constraints (quantity > 0, unitPrice >= 0) are rejected
// rather than clamped.
func LineAmount(quantity, unitPrice decimal.Decimal) (decimal.Decimal, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("line item quantity must be positive, got %s", quantity.String())
	}
	if unitPrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("line item unit price must not be negative, got %s", unitPrice.String())
	}
	return quantity.Mul(unitPrice), nil
}

// ComputeTotals recomputes every derived field of an invoice from scratch:
// each item amount, the subtotal, the tax amount (taxRate is a percentage), and the
// grand total. The fold is always run over the full item set so that single-field
// edits cannot drift the stored figures.
//
// The items slice is mutated in place: each element's Amount is overwritten with the
// recomputed value. The total is allowed to go negative when the discount exceeds
// subtotal plus tax.
func ComputeTotals(items []domain.InvoiceItem, taxRate, discount decimal.Decimal) (Totals, error) {
	subtotal := decimal.Zero
	for i := range items {
		amount, err := LineAmount(items[i].Quantity, items[i].UnitPrice)
		if err != nil {
			return Totals{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		items[i].Amount = amount
		subtotal = subtotal.Add(amount)
	}

	taxAmount := subtotal.Mul(taxRate).Div(decimal.NewFromInt(100))
	total := subtotal.Add(taxAmount).Sub(discount)

	return Totals{Subtotal: subtotal, TaxAmount: taxAmount, Total: total}, nil
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovementType is the direction of a stock entry.
type StockMovementType string

const (
	StockPurchase StockMovementType = "purchase"
	StockSale     StockMovementType = "sale"
)

// Valid reports whether t is a known movement type.
func (t StockMovementType) Valid() bool {
	return t == StockPurchase || t == StockSale
}

// StockEntry records a single inventory movement owned by a user.
// TotalAmount is always derived as Quantity * UnitPrice.
type StockEntry struct {
	StockID     string            `json:"stockID"`
	UserID      string            `json:"userID"`
	ItemName    string            `json:"itemName"`
	Type        StockMovementType `json:"type"`
	VendorName  string            `json:"vendorName,omitempty"`
	Quantity    decimal.Decimal   `json:"quantity"`
	UnitPrice   decimal.Decimal   `json:"unitPrice"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
	Notes       string            `json:"notes,omitempty"`
	Date        time.Time         `json:"date"`
	AuditFields
}

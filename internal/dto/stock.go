package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStockEntryRequest is the body for creating a stock entry. TotalAmount is not
// accepted from the client; it is always derived as quantity * unitPrice.
type CreateStockEntryRequest struct {
	ItemName   string          `json:"itemName" binding:"required"`
	Type       string          `json:"type" binding:"required,oneof=purchase sale"`
	VendorName string          `json:"vendorName"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required,decimalpositive"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Notes      string          `json:"notes"`
	Date       time.Time       `json:"date"`
}

// UpdateStockEntryRequest updates a stock entry; pointers differentiate omitted fields.
type UpdateStockEntryRequest struct {
	ItemName   *string          `json:"itemName"`
	Type       *string          `json:"type"`
	VendorName *string          `json:"vendorName"`
	Quantity   *decimal.Decimal `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unitPrice"`
	Notes      *string          `json:"notes"`
	Date       *time.Time       `json:"date"`
}

// StockEntryResponse is the public shape of a stock entry.
type StockEntryResponse struct {
	StockID     string          `json:"stockID"`
	ItemName    string          `json:"itemName"`
	Type        string          `json:"type"`
	VendorName  string          `json:"vendorName,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Notes       string          `json:"notes,omitempty"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToStockEntryResponse converts a domain.StockEntry to its response DTO.
func ToStockEntryResponse(s *domain.StockEntry) StockEntryResponse {
	return StockEntryResponse{
		StockID:     s.StockID,
		ItemName:    s.ItemName,
		Type:        string(s.Type),
		VendorName:  s.VendorName,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		TotalAmount: s.TotalAmount,
		Notes:       s.Notes,
		Date:        s.Date,
		CreatedAt:   s.CreatedAt,
	}
}

// ToStockEntryResponses converts a slice of stock entries.
func ToStockEntryResponses(entries []domain.StockEntry) []StockEntryResponse {
	out := make([]StockEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToStockEntryResponse(&entries[i])
	}
	return out
}

// StockSummaryResponse is the roll-up for GET /api/stock/summary/data.
// Inventory is the value difference between purchases and sales, not a unit count.
type StockSummaryResponse struct {
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	Inventory      decimal.Decimal `json:"inventory"`
	PurchaseCount  int             `json:"purchaseCount"`
	SalesCount     int             `json:"salesCount"`
}

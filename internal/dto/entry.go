package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest is the body for creating an income or expense entry.
// The wire field for the category id is "category", as the original client sends it.
type CreateEntryRequest struct {
	CategoryID  string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Reference   string          `json:"reference"`
}

// UpdateEntryRequest updates an entry; pointers differentiate omitted fields.
type UpdateEntryRequest struct {
	CategoryID  *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Date        *time.Time       `json:"date"`
	Reference   *string          `json:"reference"`
}

// ListEntriesParams are the optional pagination query parameters on entry lists.
// Without a limit the full list is returned, as the original API did.
type ListEntriesParams struct {
	Limit     int    `form:"limit,default=0"`
	NextToken string `form:"nextToken"`
}

// EntryResponse is the public shape of an income or expense entry.
type EntryResponse struct {
	EntryID     string          `json:"entryID"`
	CategoryID  string          `json:"categoryID"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	Reference   string          `json:"reference,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToEntryResponse converts a domain.Entry to its response DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:     e.EntryID,
		CategoryID:  e.CategoryID,
		Category:    e.CategoryName,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
		Reference:   e.Reference,
		CreatedAt:   e.CreatedAt,
	}
}

// ToEntryResponses converts a slice of entries.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = ToEntryResponse(&entries[i])
	}
	return out
}

// ListEntriesResponse wraps an entry page with its continuation token.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken string          `json:"nextToken,omitempty"`
}

// CategoryTotal pairs a category name with the summed amount referencing it.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// IncomeSummaryResponse is the roll-up for GET /api/income/summary/data.
type IncomeSummaryResponse struct {
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	CategoryTotals []CategoryTotal `json:"categoryTotals"`
}

// ExpenseSummaryResponse is the roll-up for GET /api/expense/summary/data.
type ExpenseSummaryResponse struct {
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	CategoryTotals []CategoryTotal `json:"categoryTotals"`
}

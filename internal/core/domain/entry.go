package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind mirrors CategoryKind: an entry always references a category of its own kind.
type EntryKind = CategoryKind

// Entry is a single income or expense record owned by a user.
// Income and expense entries are structurally identical; Kind tells them apart.
type Entry struct {
	EntryID     string          `json:"entryID"`
	UserID      string          `json:"userID"`
	Kind        EntryKind       `json:"kind"`
	CategoryID  string          `json:"categoryID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	Reference   string          `json:"reference,omitempty"`

	// CategoryName is denormalized onto reads for list/detail responses.
	CategoryName string `json:"categoryName,omitempty"`

	AuditFields
}

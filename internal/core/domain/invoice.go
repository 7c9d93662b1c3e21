package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Valid reports whether s is a known invoice status.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

// InvoiceItem is a single priced row within an invoice. Items have no identity of
// their own; they live and die with their invoice.
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// Customer is the recipient block on an invoice. Only the name is required.
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Invoice is a user-owned invoice document. Items and the customer block are stored
// inline with the invoice so a single write covers the whole document.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	UserID        string          `json:"userID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Customer      Customer        `json:"customer"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Items         []InvoiceItem   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notes,omitempty"`
	Status        InvoiceStatus   `json:"status"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	PaymentDate   *time.Time      `json:"paymentDate,omitempty"`
	AuditFields
}

// IsOverdue reports whether the invoice counts toward the overdue figures at the
// given instant. A paid invoice never counts, regardless of its due date.
func (inv Invoice) IsOverdue(now time.Time) bool {
	return inv.Status == InvoiceSent && inv.DueDate.Before(now)
}

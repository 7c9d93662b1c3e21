package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest is one priced row in an invoice create/update body. The amount
// is never taken from the client; the server recomputes it.
type InvoiceItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required,decimalpositive"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateInvoiceRequest is the body for POST /api/invoice and PUT /api/invoice/:id.
// All derived fields (item amounts, subtotal, taxAmount, total) are recomputed
// server-side from items, taxRate and discount.
type CreateInvoiceRequest struct {
	InvoiceNumber   string               `json:"invoiceNumber" binding:"required"`
	CustomerName    string               `json:"customerName" binding:"required"`
	CustomerAddress string               `json:"customerAddress"`
	CustomerEmail   string               `json:"customerEmail"`
	CustomerPhone   string               `json:"customerPhone"`
	IssueDate       time.Time            `json:"issueDate" binding:"required"`
	DueDate         time.Time            `json:"dueDate" binding:"required"`
	Items           []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxRate         decimal.Decimal      `json:"taxRate"`
	Discount        decimal.Decimal      `json:"discount"`
	Notes           string               `json:"notes"`
	Status          string               `json:"status"`
	PaymentMethod   string               `json:"paymentMethod"`
}

// UpdateInvoiceStatusRequest is the body for PATCH /api/invoice/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status      string     `json:"status" binding:"required,oneof=draft sent paid overdue cancelled"`
	PaymentDate *time.Time `json:"paymentDate"`
}

// InvoiceItemResponse is the public shape of one invoice line item.
type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse is the public shape of an invoice.
type InvoiceResponse struct {
	InvoiceID       string                `json:"invoiceID"`
	InvoiceNumber   string                `json:"invoiceNumber"`
	CustomerName    string                `json:"customerName"`
	CustomerAddress string                `json:"customerAddress,omitempty"`
	CustomerEmail   string                `json:"customerEmail,omitempty"`
	CustomerPhone   string                `json:"customerPhone,omitempty"`
	IssueDate       time.Time             `json:"issueDate"`
	DueDate         time.Time             `json:"dueDate"`
	Items           []InvoiceItemResponse `json:"items"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	TaxRate         decimal.Decimal       `json:"taxRate"`
	TaxAmount       decimal.Decimal       `json:"taxAmount"`
	Discount        decimal.Decimal       `json:"discount"`
	Total           decimal.Decimal       `json:"total"`
	Notes           string                `json:"notes,omitempty"`
	Status          string                `json:"status"`
	PaymentMethod   string                `json:"paymentMethod,omitempty"`
	PaymentDate     *time.Time            `json:"paymentDate,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// ToInvoiceResponse converts a domain.Invoice to its response DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		}
	}
	return InvoiceResponse{
		InvoiceID:       inv.InvoiceID,
		InvoiceNumber:   inv.InvoiceNumber,
		CustomerName:    inv.Customer.Name,
		CustomerAddress: inv.Customer.Address,
		CustomerEmail:   inv.Customer.Email,
		CustomerPhone:   inv.Customer.Phone,
		IssueDate:       inv.IssueDate,
		DueDate:         inv.DueDate,
		Items:           items,
		Subtotal:        inv.Subtotal,
		TaxRate:         inv.TaxRate,
		TaxAmount:       inv.TaxAmount,
		Discount:        inv.Discount,
		Total:           inv.Total,
		Notes:           inv.Notes,
		Status:          string(inv.Status),
		PaymentMethod:   inv.PaymentMethod,
		PaymentDate:     inv.PaymentDate,
		CreatedAt:       inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of invoices.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return out
}

// NextInvoiceNumberResponse is the body of GET /api/invoice/generate/number.
type NextInvoiceNumberResponse struct {
	NextInvoiceNumber string `json:"nextInvoiceNumber"`
}

// InvoiceSummaryResponse is the roll-up for GET /api/invoice/summary/data.
type InvoiceSummaryResponse struct {
	TotalInvoiced decimal.Decimal `json:"totalInvoiced"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalOverdue  decimal.Decimal `json:"totalOverdue"`
	TotalPending  decimal.Decimal `json:"totalPending"`
	InvoiceCount  int             `json:"invoiceCount"`
	PaidCount     int             `json:"paidCount"`
	OverdueCount  int             `json:"overdueCount"`
}

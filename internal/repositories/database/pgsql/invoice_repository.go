package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxInvoiceRepository stores each invoice as a single row, with the customer block
// and the line items held in JSONB columns. A write therefore covers the whole
// document atomically without a transaction spanning multiple tables.
type PgxInvoiceRepository struct {
	db *pgxpool.Pool
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{db: db}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, user_id, invoice_number, customer, issue_date, due_date, items,
       subtotal, tax_rate, tax_amount, discount, total, notes, status, payment_method, payment_date,
       created_at, last_updated_at`

func marshalInvoiceDoc(invoice domain.Invoice) (customerJSON, itemsJSON []byte, err error) {
	customerJSON, err = json.Marshal(invoice.Customer)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal invoice customer: %w", err)
	}
	itemsJSON, err = json.Marshal(invoice.Items)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal invoice items: %w", err)
	}
	return customerJSON, itemsJSON, nil
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var invoice domain.Invoice
	var customerJSON, itemsJSON []byte
	err := row.Scan(
		&invoice.InvoiceID,
		&invoice.UserID,
		&invoice.InvoiceNumber,
		&customerJSON,
		&invoice.IssueDate,
		&invoice.DueDate,
		&itemsJSON,
		&invoice.Subtotal,
		&invoice.TaxRate,
		&invoice.TaxAmount,
		&invoice.Discount,
		&invoice.Total,
		&invoice.Notes,
		&invoice.Status,
		&invoice.PaymentMethod,
		&invoice.PaymentDate,
		&invoice.CreatedAt,
		&invoice.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(customerJSON, &invoice.Customer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invoice customer: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &invoice.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invoice items: %w", err)
	}
	return &invoice, nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	customerJSON, itemsJSON, err := marshalInvoiceDoc(invoice)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO invoices (` + invoiceColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
    `
	_, err = r.db.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.UserID,
		invoice.InvoiceNumber,
		customerJSON,
		invoice.IssueDate,
		invoice.DueDate,
		itemsJSON,
		invoice.Subtotal,
		invoice.TaxRate,
		invoice.TaxAmount,
		invoice.Discount,
		invoice.Total,
		invoice.Notes,
		invoice.Status,
		invoice.PaymentMethod,
		invoice.PaymentDate,
		invoice.CreatedAt,
		invoice.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number %s already exists: %w", invoice.InvoiceNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	invoice, err := scanInvoice(r.db.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	return invoice, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, userID string) ([]domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE user_id = $1
        ORDER BY issue_date DESC, created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, *invoice)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) FindLatestInvoiceNumber(ctx context.Context, userID string) (string, error) {
	query := `
        SELECT invoice_number
        FROM invoices
        WHERE user_id = $1
        ORDER BY invoice_number DESC
        LIMIT 1;
    `
	var number string
	err := r.db.QueryRow(ctx, query, userID).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to find latest invoice number: %w", err)
	}
	return number, nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	customerJSON, itemsJSON, err := marshalInvoiceDoc(invoice)
	if err != nil {
		return err
	}

	query := `
        UPDATE invoices
        SET invoice_number = $1, customer = $2, issue_date = $3, due_date = $4, items = $5,
            subtotal = $6, tax_rate = $7, tax_amount = $8, discount = $9, total = $10,
            notes = $11, status = $12, payment_method = $13, payment_date = $14, last_updated_at = $15
        WHERE invoice_id = $16;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		invoice.InvoiceNumber,
		customerJSON,
		invoice.IssueDate,
		invoice.DueDate,
		itemsJSON,
		invoice.Subtotal,
		invoice.TaxRate,
		invoice.TaxAmount,
		invoice.Discount,
		invoice.Total,
		invoice.Notes,
		invoice.Status,
		invoice.PaymentMethod,
		invoice.PaymentDate,
		invoice.LastUpdatedAt,
		invoice.InvoiceID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number %s already exists: %w", invoice.InvoiceNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update invoice query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	query := `DELETE FROM invoices WHERE invoice_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

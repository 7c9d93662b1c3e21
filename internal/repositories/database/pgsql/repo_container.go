package pgsql

import (
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		CategoryRepo: newPgxCategoryRepository(dbPool),
		EntryRepo:    newPgxEntryRepository(dbPool),
		StockRepo:    newPgxStockRepository(dbPool),
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
	}
}

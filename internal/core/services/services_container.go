package services

import (
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)

	// Income and expense share the same machinery, parameterized by kind.
	container.IncomeCategories = NewCategoryService(domain.CategoryIncome, repos.CategoryRepo)
	container.ExpenseCategories = NewCategoryService(domain.CategoryExpense, repos.CategoryRepo)
	container.Income = NewEntryService(domain.CategoryIncome, repos.EntryRepo, repos.CategoryRepo)
	container.Expense = NewEntryService(domain.CategoryExpense, repos.EntryRepo, repos.CategoryRepo)

	container.Stock = NewStockService(repos.StockRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo)

	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}

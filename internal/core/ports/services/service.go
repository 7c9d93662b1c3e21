package services

import "context"

// GoogleOAuthSvcFacade exchanges a Google authorization code and verifies the
// resulting ID token, returning the verified identity.
type GoogleOAuthSvcFacade interface {
	ExchangeAndVerify(ctx context.Context, code string) (*ExternalIdentity, error)
}

// ExternalIdentity is the subset of an OAuth provider's claims the application uses.
type ExternalIdentity struct {
	Email string
	Name  string
}

// ServiceContainer bundles every service interface for route registration.
type ServiceContainer struct {
	User              UserSvcFacade
	IncomeCategories  CategorySvcFacade
	ExpenseCategories CategorySvcFacade
	Income            EntrySvcFacade
	Expense           EntrySvcFacade
	Stock             StockSvcFacade
	Invoice           InvoiceSvcFacade
	GoogleOAuth       GoogleOAuthSvcFacade
}

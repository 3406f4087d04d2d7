package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *LoanApplication) error
	GetByApplicationID(ctx context.Context, applicationID string) (*LoanApplication, error)
	// Same lookup with a row lock, for use inside a transaction.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*LoanApplication, error)
	ListByBorrowerID(ctx context.Context, borrowerID string) ([]LoanApplication, error)
	ListByOfferIDs(ctx context.Context, offerIDs []string) ([]LoanApplication, error)
	List(ctx context.Context) ([]LoanApplication, error)
	Save(ctx context.Context, a *LoanApplication) error
}

package payment

import "context"

type Repository interface {
	// CreateIfAbsent inserts a zero-balance record for the application
	// unless one already exists. Must be safe to call more than once.
	CreateIfAbsent(ctx context.Context, r *Record) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Record, error)
	ListByApplicationIDs(ctx context.Context, applicationIDs []string) ([]Record, error)
	List(ctx context.Context) ([]Record, error)
	// AppendEntry adds one repayment and bumps amount_paid by the same
	// amount as a single SQL increment, not read-then-write.
	AppendEntry(ctx context.Context, applicationID string, e *Entry) error
}

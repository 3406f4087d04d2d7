package paymentmock

import (
	"context"

	domain "lendlink-backend/internal/domain/payment"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies payment.Repository.
type Repo struct {
	CreateIfAbsentFn       func(ctx context.Context, r *domain.Record) error
	GetByApplicationIDFn   func(ctx context.Context, applicationID string) (*domain.Record, error)
	ListByApplicationIDsFn func(ctx context.Context, applicationIDs []string) ([]domain.Record, error)
	ListFn                 func(ctx context.Context) ([]domain.Record, error)
	AppendEntryFn          func(ctx context.Context, applicationID string, e *domain.Entry) error
}

func (m *Repo) CreateIfAbsent(ctx context.Context, r *domain.Record) error {
	if m.CreateIfAbsentFn != nil {
		return m.CreateIfAbsentFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Record, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByApplicationIDs(ctx context.Context, applicationIDs []string) ([]domain.Record, error) {
	if m.ListByApplicationIDsFn != nil {
		return m.ListByApplicationIDsFn(ctx, applicationIDs)
	}
	return nil, nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Record, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) AppendEntry(ctx context.Context, applicationID string, e *domain.Entry) error {
	if m.AppendEntryFn != nil {
		return m.AppendEntryFn(ctx, applicationID, e)
	}
	return gorm.ErrRecordNotFound
}

package offermock

import (
	"context"

	domain "lendlink-backend/internal/domain/offer"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies offer.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, o *domain.LoanOffer) error
	GetByOfferIDFn   func(ctx context.Context, offerID string) (*domain.LoanOffer, error)
	ListByLenderIDFn func(ctx context.Context, lenderID string) ([]domain.LoanOffer, error)
	ListActiveFn     func(ctx context.Context) ([]domain.LoanOffer, error)
	ListFn           func(ctx context.Context) ([]domain.LoanOffer, error)
	SaveFn           func(ctx context.Context, o *domain.LoanOffer) error
}

func (m *Repo) Create(ctx context.Context, o *domain.LoanOffer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByOfferID(ctx context.Context, offerID string) (*domain.LoanOffer, error) {
	if m.GetByOfferIDFn != nil {
		return m.GetByOfferIDFn(ctx, offerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByLenderID(ctx context.Context, lenderID string) ([]domain.LoanOffer, error) {
	if m.ListByLenderIDFn != nil {
		return m.ListByLenderIDFn(ctx, lenderID)
	}
	return nil, nil
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.LoanOffer, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) List(ctx context.Context) ([]domain.LoanOffer, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, o *domain.LoanOffer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, o)
	}
	return nil
}

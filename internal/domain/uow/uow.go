package uow

import (
	"context"

	"lendlink-backend/internal/domain/application"
	"lendlink-backend/internal/domain/offer"
	"lendlink-backend/internal/domain/payment"
	"lendlink-backend/internal/domain/user"
)

type Repos struct {
	Users        user.Repository
	Offers       offer.Repository
	Applications application.Repository
	Payments     payment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.LoanApplication) error) error
}

package admin

import (
	"context"
	"errors"

	appDomain "lendlink-backend/internal/domain/application"
	"lendlink-backend/internal/domain/credit"
	offerDomain "lendlink-backend/internal/domain/offer"
	paymentDomain "lendlink-backend/internal/domain/payment"
	userDomain "lendlink-backend/internal/domain/user"

	"gorm.io/gorm"
)

type Usecase struct {
	users        userDomain.Repository
	offers       offerDomain.Repository
	applications appDomain.Repository
	payments     paymentDomain.Repository
}

func NewUsecase(users userDomain.Repository, offers offerDomain.Repository, applications appDomain.Repository, payments paymentDomain.Repository) *Usecase {
	return &Usecase{users: users, offers: offers, applications: applications, payments: payments}
}

func (u *Usecase) ListUsers(ctx context.Context) ([]userDomain.User, error) {
	return u.users.List(ctx)
}

// ListBorrowersWithDerivedData joins each borrower with their applications
// and payment records and computes the admin-view score over both.
func (u *Usecase) ListBorrowersWithDerivedData(ctx context.Context) ([]BorrowerOverviewDTO, error) {
	borrowers, err := u.users.ListByRole(ctx, userDomain.RoleBorrower)
	if err != nil {
		return nil, err
	}

	out := make([]BorrowerOverviewDTO, 0, len(borrowers))
	for _, b := range borrowers {
		apps, err := u.applications.ListByBorrowerID(ctx, b.UserID)
		if err != nil {
			return nil, err
		}
		appIDs := make([]string, 0, len(apps))
		for _, a := range apps {
			appIDs = append(appIDs, a.ApplicationID)
		}
		records, err := u.payments.ListByApplicationIDs(ctx, appIDs)
		if err != nil {
			return nil, err
		}

		out = append(out, BorrowerOverviewDTO{
			User:         b,
			Applications: apps,
			Payments:     records,
			CreditScore:  credit.ForAdmin(apps, records),
		})
	}
	return out, nil
}

// DeleteUser soft-deletes the target. Admins cannot delete themselves.
func (u *Usecase) DeleteUser(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return userDomain.ErrSelfDelete
	}
	if err := u.users.Delete(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userDomain.ErrNotFound
		}
		return err
	}
	return nil
}

func (u *Usecase) SetUserRole(ctx context.Context, targetID string, role userDomain.Role) (*userDomain.User, error) {
	if !role.Valid() {
		return nil, errors.New("role must be borrower, lender or admin")
	}
	rec, err := u.users.GetByUserID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}
	rec.Role = role
	if err := u.users.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *Usecase) ListAllApplications(ctx context.Context) ([]appDomain.LoanApplication, error) {
	return u.applications.List(ctx)
}

func (u *Usecase) ListAllOffers(ctx context.Context) ([]offerDomain.LoanOffer, error) {
	return u.offers.List(ctx)
}

func (u *Usecase) ListAllPayments(ctx context.Context) ([]paymentDomain.Record, error) {
	return u.payments.List(ctx)
}

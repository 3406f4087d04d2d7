package application

import (
	"context"
	"errors"
	"time"

	appDomain "lendlink-backend/internal/domain/application"
	offerDomain "lendlink-backend/internal/domain/offer"
	paymentDomain "lendlink-backend/internal/domain/payment"
	"lendlink-backend/internal/domain/uow"
	"lendlink-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	applications appDomain.Repository
	offers       offerDomain.Repository
	payments     paymentDomain.Repository
	uow          uow.UnitOfWork
}

func NewUsecase(applications appDomain.Repository, offers offerDomain.Repository, payments paymentDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{applications: applications, offers: offers, payments: payments, uow: tx}
}

func (u *Usecase) Create(ctx context.Context, borrowerID string, in CreateApplicationInput) (*ApplicationDTO, error) {
	if in.OfferID == "" || in.NationalID == "" || in.MonthlySalary <= 0 {
		return nil, errors.New("offer_id, national_id and a positive monthly_salary are required")
	}

	o, err := u.offers.GetByOfferID(ctx, in.OfferID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, offerDomain.ErrNotFound
		}
		return nil, err
	}
	if !o.IsActive {
		return nil, appDomain.ErrOfferInactive
	}

	a := &appDomain.LoanApplication{
		ApplicationID:   id.NewID32(),
		BorrowerID:      borrowerID,
		OfferID:         in.OfferID,
		NationalID:      in.NationalID,
		MonthlySalary:   in.MonthlySalary,
		Reason:          in.Reason,
		Status:          appDomain.StatusPending,
		StatusUpdatedAt: time.Now().UTC(),
	}
	if err := u.applications.Create(ctx, a); err != nil {
		return nil, err
	}
	dto := toDTO(a)
	return &dto, nil
}

func (u *Usecase) ListOwn(ctx context.Context, borrowerID string) ([]ApplicationDTO, error) {
	apps, err := u.applications.ListByBorrowerID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	return toDTOs(apps), nil
}

// ListForLenderOffers returns every application against the lender's
// offers, each carrying a repayment summary when a record exists.
func (u *Usecase) ListForLenderOffers(ctx context.Context, lenderID string) ([]ApplicationWithPaymentDTO, error) {
	offers, err := u.offers.ListByLenderID(ctx, lenderID)
	if err != nil {
		return nil, err
	}
	offerIDs := make([]string, 0, len(offers))
	for _, o := range offers {
		offerIDs = append(offerIDs, o.OfferID)
	}

	apps, err := u.applications.ListByOfferIDs(ctx, offerIDs)
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
	recByApp := make(map[string]*paymentDomain.Record, len(records))
	for i := range records {
		recByApp[records[i].ApplicationID] = &records[i]
	}

	out := make([]ApplicationWithPaymentDTO, 0, len(apps))
	for i := range apps {
		item := ApplicationWithPaymentDTO{ApplicationDTO: toDTO(&apps[i])}
		if rec, ok := recByApp[apps[i].ApplicationID]; ok {
			item.Payment = &PaymentSummary{
				RecordID:   rec.RecordID,
				AmountPaid: rec.AmountPaid,
				EntryCount: len(rec.Entries),
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// SetStatus is the lifecycle transition. The acting lender must own the
// offer behind the application. On approval the offer is deactivated and a
// zero-balance payment record is created if absent, all inside one
// transaction with the application row locked. The status write itself is
// repeatable; the side effects are not repeated.
func (u *Usecase) SetStatus(ctx context.Context, lenderID, applicationID string, newStatus appDomain.Status) (*ApplicationDTO, error) {
	if newStatus != appDomain.StatusApproved && newStatus != appDomain.StatusRejected {
		return nil, appDomain.ErrBadStatus
	}

	var dto ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *appDomain.LoanApplication) error {
		o, err := r.Offers.GetByOfferID(ctx, a.OfferID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return offerDomain.ErrNotFound
			}
			return err
		}
		if o.LenderID != lenderID {
			return appDomain.ErrNotOfferOwner
		}

		if newStatus == appDomain.StatusApproved {
			if o.IsActive {
				o.IsActive = false
				if err := r.Offers.Save(ctx, o); err != nil {
					return err
				}
			}
			rec := &paymentDomain.Record{
				RecordID:      id.NewID32(),
				ApplicationID: a.ApplicationID,
				AmountPaid:    0,
			}
			if err := r.Payments.CreateIfAbsent(ctx, rec); err != nil {
				return err
			}
		}

		a.Status = newStatus
		a.StatusUpdatedAt = time.Now().UTC()
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, err
	}
	return &dto, nil
}

func toDTO(a *appDomain.LoanApplication) ApplicationDTO {
	return ApplicationDTO{
		ApplicationID:   a.ApplicationID,
		BorrowerID:      a.BorrowerID,
		OfferID:         a.OfferID,
		NationalID:      a.NationalID,
		MonthlySalary:   a.MonthlySalary,
		Reason:          a.Reason,
		Status:          string(a.Status),
		StatusUpdatedAt: a.StatusUpdatedAt,
		CreatedAt:       a.CreatedAt,
	}
}

func toDTOs(apps []appDomain.LoanApplication) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, toDTO(&apps[i]))
	}
	return out
}

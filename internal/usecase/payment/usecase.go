package payment

import (
	"context"
	"errors"
	"time"

	appDomain "lendlink-backend/internal/domain/application"
	"lendlink-backend/internal/domain/credit"
	offerDomain "lendlink-backend/internal/domain/offer"
	paymentDomain "lendlink-backend/internal/domain/payment"

	"gorm.io/gorm"
)

type Usecase struct {
	payments     paymentDomain.Repository
	applications appDomain.Repository
	offers       offerDomain.Repository
}

func NewUsecase(payments paymentDomain.Repository, applications appDomain.Repository, offers offerDomain.Repository) *Usecase {
	return &Usecase{payments: payments, applications: applications, offers: offers}
}

// Record appends one repayment. The acting borrower must own the
// application; a missing payment record means the application was never
// approved, which surfaces as not-found. The amount itself is taken as
// given (no cap against the loan principal).
func (u *Usecase) Record(ctx context.Context, borrowerID, applicationID string, in RecordPaymentInput) (*RecordDTO, error) {
	a, err := u.applications.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, err
	}
	if a.BorrowerID != borrowerID {
		return nil, appDomain.ErrNotOwner
	}

	entry := &paymentDomain.Entry{
		PaidAt: time.Now().UTC(),
		Amount: in.Amount,
	}
	if err := u.payments.AppendEntry(ctx, applicationID, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymentDomain.ErrNotFound
		}
		return nil, err
	}

	rec, err := u.payments.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	dto := toRecordDTO(rec)
	return &dto, nil
}

// ListOwn returns the borrower's payment records enriched with the amount
// and rate of the offer each application was made against.
func (u *Usecase) ListOwn(ctx context.Context, borrowerID string) ([]RecordWithTermsDTO, error) {
	apps, err := u.applications.ListByBorrowerID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	appIDs := make([]string, 0, len(apps))
	offerByApp := make(map[string]string, len(apps))
	for _, a := range apps {
		appIDs = append(appIDs, a.ApplicationID)
		offerByApp[a.ApplicationID] = a.OfferID
	}

	records, err := u.payments.ListByApplicationIDs(ctx, appIDs)
	if err != nil {
		return nil, err
	}

	out := make([]RecordWithTermsDTO, 0, len(records))
	for i := range records {
		item := RecordWithTermsDTO{RecordDTO: toRecordDTO(&records[i])}
		if offerID, ok := offerByApp[records[i].ApplicationID]; ok {
			if o, err := u.offers.GetByOfferID(ctx, offerID); err == nil {
				item.LoanAmount = o.Amount
				item.InterestRate = o.InterestRate
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// CreditScore runs the borrower-view scorer over every entry in the
// borrower's payment records.
func (u *Usecase) CreditScore(ctx context.Context, borrowerID string) (*CreditScoreDTO, error) {
	apps, err := u.applications.ListByBorrowerID(ctx, borrowerID)
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
	var entries []paymentDomain.Entry
	for _, r := range records {
		entries = append(entries, r.Entries...)
	}

	return &CreditScoreDTO{
		BorrowerID: borrowerID,
		Score:      credit.ForBorrower(entries),
	}, nil
}

func toRecordDTO(r *paymentDomain.Record) RecordDTO {
	entries := make([]EntryDTO, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, EntryDTO{Date: e.PaidAt, Amount: e.Amount, Status: e.Status})
	}
	return RecordDTO{
		RecordID:      r.RecordID,
		ApplicationID: r.ApplicationID,
		AmountPaid:    r.AmountPaid,
		Payments:      entries,
	}
}

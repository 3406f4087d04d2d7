package offer

import (
	"context"
	"errors"

	offerDomain "lendlink-backend/internal/domain/offer"
	"lendlink-backend/internal/domain/user"
	"lendlink-backend/pkg/id"
)

type Usecase struct {
	offers offerDomain.Repository
	users  user.Repository
}

func NewUsecase(offers offerDomain.Repository, users user.Repository) *Usecase {
	return &Usecase{offers: offers, users: users}
}

func (u *Usecase) Create(ctx context.Context, lenderID string, in CreateOfferInput) (*OfferDTO, error) {
	if in.Amount <= 0 || in.InterestRate <= 0 || in.MaxTermMonths <= 0 {
		return nil, errors.New("amount, interest_rate and max_term_months must be positive")
	}

	o := &offerDomain.LoanOffer{
		OfferID:       id.NewID32(),
		LenderID:      lenderID,
		Amount:        in.Amount,
		InterestRate:  in.InterestRate,
		MaxTermMonths: in.MaxTermMonths,
		IsActive:      true,
	}
	if err := u.offers.Create(ctx, o); err != nil {
		return nil, err
	}
	dto := toOfferDTO(o)
	return &dto, nil
}

func (u *Usecase) ListOwn(ctx context.Context, lenderID string) ([]OfferDTO, error) {
	offers, err := u.offers.ListByLenderID(ctx, lenderID)
	if err != nil {
		return nil, err
	}
	return toOfferDTOs(offers), nil
}

// ListActive is the borrower discovery view: every active offer annotated
// with its lender's name via one batched user lookup. Owners are resolved
// by id, not role, so an offer survives its lender being re-roled later.
func (u *Usecase) ListActive(ctx context.Context) ([]ActiveOfferDTO, error) {
	offers, err := u.offers.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	lenderIDs := make([]string, 0, len(offers))
	seen := make(map[string]struct{}, len(offers))
	for i := range offers {
		if _, ok := seen[offers[i].LenderID]; ok {
			continue
		}
		seen[offers[i].LenderID] = struct{}{}
		lenderIDs = append(lenderIDs, offers[i].LenderID)
	}

	owners, err := u.users.ListByUserIDs(ctx, lenderIDs)
	if err != nil {
		return nil, err
	}
	nameByID := make(map[string]string, len(owners))
	for _, o := range owners {
		nameByID[o.UserID] = o.Name
	}

	out := make([]ActiveOfferDTO, 0, len(offers))
	for i := range offers {
		out = append(out, ActiveOfferDTO{
			OfferDTO:   toOfferDTO(&offers[i]),
			LenderName: nameByID[offers[i].LenderID],
		})
	}
	return out, nil
}

func toOfferDTO(o *offerDomain.LoanOffer) OfferDTO {
	return OfferDTO{
		OfferID:       o.OfferID,
		LenderID:      o.LenderID,
		Amount:        o.Amount,
		InterestRate:  o.InterestRate,
		MaxTermMonths: o.MaxTermMonths,
		IsActive:      o.IsActive,
		CreatedAt:     o.CreatedAt,
	}
}

func toOfferDTOs(offers []offerDomain.LoanOffer) []OfferDTO {
	out := make([]OfferDTO, 0, len(offers))
	for i := range offers {
		out = append(out, toOfferDTO(&offers[i]))
	}
	return out
}

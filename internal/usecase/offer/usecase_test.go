package offer

import (
	"context"
	"testing"

	offerDomain "lendlink-backend/internal/domain/offer"
	"lendlink-backend/internal/domain/user"
	"lendlink-backend/internal/testutil/offermock"
	"lendlink-backend/internal/testutil/usermock"
)

const lenderID = "11111111111111111111111111111111"

func TestCreate_Success(t *testing.T) {
	uc := NewUsecase(&offermock.Repo{
		CreateFn: func(ctx context.Context, o *offerDomain.LoanOffer) error { return nil },
	}, nil)

	dto, err := uc.Create(context.Background(), lenderID, CreateOfferInput{
		Amount: 5_000_000, InterestRate: 0.18, MaxTermMonths: 12,
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if len(dto.OfferID) != 32 {
		t.Fatalf("OfferID length: %d", len(dto.OfferID))
	}
	if !dto.IsActive {
		t.Fatal("new offers must start active")
	}
	if dto.LenderID != lenderID {
		t.Fatalf("lender = %s", dto.LenderID)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	uc := NewUsecase(&offermock.Repo{
		CreateFn: func(ctx context.Context, o *offerDomain.LoanOffer) error {
			t.Fatal("Create must not persist an invalid offer")
			return nil
		},
	}, nil)
	if _, err := uc.Create(context.Background(), lenderID, CreateOfferInput{Amount: 0, InterestRate: 0.18, MaxTermMonths: 12}); err == nil {
		t.Fatal("want error for zero amount")
	}
}

func TestListActive_AnnotatesLenderNames(t *testing.T) {
	uc := NewUsecase(
		&offermock.Repo{
			ListActiveFn: func(ctx context.Context) ([]offerDomain.LoanOffer, error) {
				return []offerDomain.LoanOffer{
					{OfferID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", LenderID: lenderID, IsActive: true},
					{OfferID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", LenderID: "77777777777777777777777777777777", IsActive: true},
				}, nil
			},
		},
		&usermock.Repo{
			ListByUserIDsFn: func(ctx context.Context, userIDs []string) ([]user.User, error) {
				if len(userIDs) != 2 {
					t.Fatalf("userIDs = %v", userIDs)
				}
				return []user.User{{UserID: lenderID, Name: "Budi Capital"}}, nil
			},
		},
	)

	out, err := uc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d", len(out))
	}
	if out[0].LenderName != "Budi Capital" {
		t.Fatalf("lender name = %q", out[0].LenderName)
	}
	// lender record gone: name omitted, offer still listed
	if out[1].LenderName != "" {
		t.Fatalf("expected empty name, got %q", out[1].LenderName)
	}
}

func TestListActive_NamesSurviveOwnerRoleChange(t *testing.T) {
	uc := NewUsecase(
		&offermock.Repo{
			ListActiveFn: func(ctx context.Context) ([]offerDomain.LoanOffer, error) {
				return []offerDomain.LoanOffer{
					{OfferID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", LenderID: lenderID, IsActive: true},
				}, nil
			},
		},
		&usermock.Repo{
			ListByUserIDsFn: func(ctx context.Context, userIDs []string) ([]user.User, error) {
				if len(userIDs) != 1 || userIDs[0] != lenderID {
					t.Fatalf("userIDs = %v", userIDs)
				}
				// The owner was demoted to borrower after publishing.
				return []user.User{{UserID: lenderID, Name: "Budi Capital", Role: user.RoleBorrower}}, nil
			},
		},
	)

	out, err := uc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive err: %v", err)
	}
	if len(out) != 1 || out[0].LenderName != "Budi Capital" {
		t.Fatalf("out = %+v", out)
	}
}

package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authn "lendlink-backend/internal/auth"
	appDomain "lendlink-backend/internal/domain/application"
	offerDomain "lendlink-backend/internal/domain/offer"
	"lendlink-backend/internal/domain/uow"
	"lendlink-backend/internal/testutil/applicationmock"
	"lendlink-backend/internal/testutil/offermock"
	"lendlink-backend/internal/testutil/paymentmock"
	"lendlink-backend/internal/testutil/uowmock"
	uc "lendlink-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

var (
	testBorrowerID = strings.Repeat("2", 32)
	testLenderID   = strings.Repeat("1", 32)
	testOfferID    = strings.Repeat("3", 32)
	testAppID      = strings.Repeat("4", 32)
)

// asCaller plants the decoded identity RequireAuth would set.
func asCaller(c echo.Context, userID, role string) {
	c.Set("identity", &authn.Claims{UserID: userID, Role: role})
}

func TestCreateApplication_Created(t *testing.T) {
	e := newEchoWithValidator()

	usecase := uc.NewUsecase(
		&applicationmock.Repo{
			CreateFn: func(ctx context.Context, a *appDomain.LoanApplication) error { return nil },
		},
		&offermock.Repo{
			GetByOfferIDFn: func(ctx context.Context, id string) (*offerDomain.LoanOffer, error) {
				return &offerDomain.LoanOffer{OfferID: testOfferID, LenderID: testLenderID, IsActive: true}, nil
			},
		},
		nil, nil,
	)
	h := NewApplicationHandler(usecase)

	reqBody := map[string]any{
		"offer_id":       testOfferID,
		"national_id":    "NID-1",
		"monthly_salary": 4000000,
		"reason":         "working capital",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/applications", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	asCaller(c, testBorrowerID, "borrower")

	if err := h.CreateApplication(c); err != nil {
		t.Fatalf("CreateApplication error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
	var got uc.ApplicationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.BorrowerID != testBorrowerID || got.Status != string(appDomain.StatusPending) {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestCreateApplication_InactiveOfferIs400(t *testing.T) {
	e := newEchoWithValidator()

	usecase := uc.NewUsecase(
		&applicationmock.Repo{},
		&offermock.Repo{
			GetByOfferIDFn: func(ctx context.Context, id string) (*offerDomain.LoanOffer, error) {
				return &offerDomain.LoanOffer{OfferID: testOfferID, LenderID: testLenderID, IsActive: false}, nil
			},
		},
		nil, nil,
	)
	h := NewApplicationHandler(usecase)

	reqBody := map[string]any{
		"offer_id":       testOfferID,
		"national_id":    "NID-1",
		"monthly_salary": 4000000,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/applications", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	asCaller(c, testBorrowerID, "borrower")

	if err := h.CreateApplication(c); err != nil {
		t.Fatalf("CreateApplication error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSetStatus_WrongLenderIs403(t *testing.T) {
	e := newEchoWithValidator()

	m := uowmock.New()
	m.WithinApplicationTxFn = func(ctx context.Context, id string, fn func(uow.Repos, *appDomain.LoanApplication) error) error {
		repos := uow.Repos{
			Offers: &offermock.Repo{
				GetByOfferIDFn: func(ctx context.Context, id string) (*offerDomain.LoanOffer, error) {
					return &offerDomain.LoanOffer{OfferID: testOfferID, LenderID: testLenderID, IsActive: true}, nil
				},
			},
		}
		return fn(repos, &appDomain.LoanApplication{
			ApplicationID: testAppID,
			BorrowerID:    testBorrowerID,
			OfferID:       testOfferID,
			Status:        appDomain.StatusPending,
		})
	}
	h := NewApplicationHandler(uc.NewUsecase(nil, nil, nil, m))

	req := httptest.NewRequest(stdhttp.MethodPatch, "/", mustJSON(map[string]string{"status": "approved"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(testAppID)
	asCaller(c, strings.Repeat("9", 32), "lender") // not the offer's owner

	if err := h.SetStatus(c); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403, body: %s", rec.Code, rec.Body.String())
	}
}

func TestSetStatus_ValidationRejectsPending(t *testing.T) {
	e := newEchoWithValidator()
	h := NewApplicationHandler(uc.NewUsecase(nil, nil, nil, uowmock.New()))

	req := httptest.NewRequest(stdhttp.MethodPatch, "/", mustJSON(map[string]string{"status": "pending"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(testAppID)
	asCaller(c, testLenderID, "lender")

	if err := h.SetStatus(c); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestSetStatus_ApprovedReturnsDTO(t *testing.T) {
	e := newEchoWithValidator()

	m := uowmock.New()
	m.WithinApplicationTxFn = func(ctx context.Context, id string, fn func(uow.Repos, *appDomain.LoanApplication) error) error {
		repos := uow.Repos{
			Offers: &offermock.Repo{
				GetByOfferIDFn: func(ctx context.Context, id string) (*offerDomain.LoanOffer, error) {
					return &offerDomain.LoanOffer{OfferID: testOfferID, LenderID: testLenderID, IsActive: true}, nil
				},
			},
			Payments:     &paymentmock.Repo{},
			Applications: &applicationmock.Repo{SaveFn: func(ctx context.Context, a *appDomain.LoanApplication) error { return nil }},
		}
		return fn(repos, &appDomain.LoanApplication{
			ApplicationID: testAppID,
			BorrowerID:    testBorrowerID,
			OfferID:       testOfferID,
			Status:        appDomain.StatusPending,
		})
	}
	h := NewApplicationHandler(uc.NewUsecase(nil, nil, nil, m))

	req := httptest.NewRequest(stdhttp.MethodPatch, "/", mustJSON(map[string]string{"status": "approved"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(testAppID)
	asCaller(c, testLenderID, "lender")

	if err := h.SetStatus(c); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	var got uc.ApplicationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Status != string(appDomain.StatusApproved) {
		t.Fatalf("status = %s, want approved", got.Status)
	}
}

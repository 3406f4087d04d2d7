package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	appDomain "lendlink-backend/internal/domain/application"
	paymentDomain "lendlink-backend/internal/domain/payment"
	"lendlink-backend/internal/testutil/applicationmock"
	"lendlink-backend/internal/testutil/paymentmock"
	uc "lendlink-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

func approvedApp() *appDomain.LoanApplication {
	return &appDomain.LoanApplication{
		ApplicationID: testAppID,
		BorrowerID:    testBorrowerID,
		OfferID:       testOfferID,
		Status:        appDomain.StatusApproved,
	}
}

func TestRecordPayment_OK(t *testing.T) {
	e := newEchoWithValidator()

	usecase := uc.NewUsecase(
		&paymentmock.Repo{
			AppendEntryFn: func(ctx context.Context, id string, entry *paymentDomain.Entry) error { return nil },
			GetByApplicationIDFn: func(ctx context.Context, id string) (*paymentDomain.Record, error) {
				return &paymentDomain.Record{
					RecordID:      testOfferID,
					ApplicationID: testAppID,
					AmountPaid:    50,
					Entries:       []paymentDomain.Entry{{PaidAt: time.Now().UTC(), Amount: 50}},
				}, nil
			},
		},
		&applicationmock.Repo{
			GetByApplicationIDFn: func(ctx context.Context, id string) (*appDomain.LoanApplication, error) {
				return approvedApp(), nil
			},
		},
		nil,
	)
	h := NewPaymentHandler(usecase)

	req := httptest.NewRequest(stdhttp.MethodPost, "/", mustJSON(map[string]any{"amount": 50}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(testAppID)
	asCaller(c, testBorrowerID, "borrower")

	if err := h.RecordPayment(c); err != nil {
		t.Fatalf("RecordPayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	var got uc.RecordDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.AmountPaid != 50 || len(got.Payments) != 1 {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestRecordPayment_BeforeApprovalIs404(t *testing.T) {
	e := newEchoWithValidator()

	usecase := uc.NewUsecase(
		&paymentmock.Repo{}, // default AppendEntry: no record exists
		&applicationmock.Repo{
			GetByApplicationIDFn: func(ctx context.Context, id string) (*appDomain.LoanApplication, error) {
				a := approvedApp()
				a.Status = appDomain.StatusPending
				return a, nil
			},
		},
		nil,
	)
	h := NewPaymentHandler(usecase)

	req := httptest.NewRequest(stdhttp.MethodPost, "/", mustJSON(map[string]any{"amount": 50}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(testAppID)
	asCaller(c, testBorrowerID, "borrower")

	if err := h.RecordPayment(c); err != nil {
		t.Fatalf("RecordPayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404, body: %s", rec.Code, rec.Body.String())
	}
}

func TestRecordPayment_ForeignApplicationIs403(t *testing.T) {
	e := newEchoWithValidator()

	usecase := uc.NewUsecase(
		&paymentmock.Repo{},
		&applicationmock.Repo{
			GetByApplicationIDFn: func(ctx context.Context, id string) (*appDomain.LoanApplication, error) {
				return approvedApp(), nil
			},
		},
		nil,
	)
	h := NewPaymentHandler(usecase)

	req := httptest.NewRequest(stdhttp.MethodPost, "/", mustJSON(map[string]any{"amount": 50}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(testAppID)
	asCaller(c, testLenderID, "borrower") // someone else's application

	if err := h.RecordPayment(c); err != nil {
		t.Fatalf("RecordPayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403, body: %s", rec.Code, rec.Body.String())
	}
}

func TestRecordPayment_ValidationRejectsTooManyDecimals(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPaymentHandler(uc.NewUsecase(&paymentmock.Repo{}, &applicationmock.Repo{}, nil))

	req := httptest.NewRequest(stdhttp.MethodPost, "/", mustJSON(map[string]any{"amount": 50.123}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(testAppID)
	asCaller(c, testBorrowerID, "borrower")

	if err := h.RecordPayment(c); err != nil {
		t.Fatalf("RecordPayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestCreditScore_ReturnsBase(t *testing.T) {
	e := newEchoWithValidator()

	usecase := uc.NewUsecase(
		&paymentmock.Repo{},
		&applicationmock.Repo{
			ListByBorrowerIDFn: func(ctx context.Context, id string) ([]appDomain.LoanApplication, error) {
				return []appDomain.LoanApplication{*approvedApp()}, nil
			},
		},
		nil,
	)
	h := NewPaymentHandler(usecase)

	req := httptest.NewRequest(stdhttp.MethodGet, "/credit-score", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	asCaller(c, testBorrowerID, "borrower")

	if err := h.CreditScore(c); err != nil {
		t.Fatalf("CreditScore error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got uc.CreditScoreDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Score != 650 || got.BorrowerID != testBorrowerID {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lendlink-backend/internal/auth"

	"github.com/labstack/echo/v4"
)

type stubParser struct {
	claims *auth.Claims
	err    error
}

func (s stubParser) Parse(tokenString string) (*auth.Claims, error) { return s.claims, s.err }

func echoWithAuth(p TokenParser) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"uid": Identity(c).UserID})
	}, RequireAuth(p))
	return e
}

func getWithHeader(e *echo.Echo, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	e := echoWithAuth(stubParser{claims: &auth.Claims{UserID: "u1"}})
	if rec := getWithHeader(e, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no header => want 401, got %d", rec.Code)
	}
	if rec := getWithHeader(e, "Basic abc"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("non-bearer => want 401, got %d", rec.Code)
	}
	if rec := getWithHeader(e, "Bearer "); rec.Code != http.StatusUnauthorized {
		t.Fatalf("empty bearer => want 401, got %d", rec.Code)
	}
}

func TestRequireAuth_BadToken(t *testing.T) {
	e := echoWithAuth(stubParser{err: errors.New("expired")})
	if rec := getWithHeader(e, "Bearer whatever"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token => want 401, got %d", rec.Code)
	}
}

func TestRequireAuth_PassesIdentityDownstream(t *testing.T) {
	e := echoWithAuth(stubParser{claims: &auth.Claims{UserID: "u1", Role: "borrower"}})
	rec := getWithHeader(e, "Bearer good")
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token => want 200, got %d", rec.Code)
	}
	if rec.Body.String() != "{\"uid\":\"u1\"}\n" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestIdentity_NilOutsideAuth(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if Identity(c) != nil {
		t.Fatal("expected nil identity without RequireAuth")
	}
}

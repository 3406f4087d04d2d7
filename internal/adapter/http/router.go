package http

import (
	mw "lendlink-backend/internal/adapter/middleware"
	"lendlink-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Base        *Handler
	Auth        *AuthHandler
	Offer       *OfferHandler
	Application *ApplicationHandler
	Payment     *PaymentHandler
	Admin       *AdminHandler
}

// policy is the one table mapping each gated operation to its required
// role; RoleGate enforces it uniformly and fails closed on unknown routes.
var policy = mw.Policy{
	"POST /offers":       user.RoleLender,
	"GET /offers/mine":   user.RoleLender,
	"GET /offers/active": user.RoleBorrower,

	"POST /applications":                          user.RoleBorrower,
	"GET /applications/mine":                      user.RoleBorrower,
	"GET /applications/for-offers":                user.RoleLender,
	"PATCH /applications/:application_id/status":  user.RoleLender,
	"POST /applications/:application_id/payments": user.RoleBorrower,

	"GET /payments/mine": user.RoleBorrower,
	"GET /credit-score":  user.RoleBorrower,

	"GET /admin/users":                 user.RoleAdmin,
	"GET /admin/borrowers":             user.RoleAdmin,
	"DELETE /admin/users/:user_id":     user.RoleAdmin,
	"PATCH /admin/users/:user_id/role": user.RoleAdmin,
	"GET /admin/applications":          user.RoleAdmin,
	"GET /admin/offers":                user.RoleAdmin,
	"GET /admin/payments":              user.RoleAdmin,
}

// RegisterRoutes wires the public auth surface plus the gated resource
// groups. extra runs after RequireAuth and the role gate (idempotency).
func RegisterRoutes(e *echo.Echo, h Handlers, tokens mw.TokenParser, extra ...echo.MiddlewareFunc) {
	e.GET("/health", h.Base.Health)

	e.POST("/auth/register", h.Auth.Register)
	e.POST("/auth/login", h.Auth.Login)

	guarded := []echo.MiddlewareFunc{mw.RequireAuth(tokens), mw.RoleGate(policy)}
	guarded = append(guarded, extra...)
	g := e.Group("", guarded...)

	g.POST("/offers", h.Offer.CreateOffer)
	g.GET("/offers/mine", h.Offer.ListOwnOffers)
	g.GET("/offers/active", h.Offer.ListActiveOffers)

	g.POST("/applications", h.Application.CreateApplication)
	g.GET("/applications/mine", h.Application.ListOwnApplications)
	g.GET("/applications/for-offers", h.Application.ListApplicationsForOffers)
	g.PATCH("/applications/:application_id/status", h.Application.SetStatus)
	g.POST("/applications/:application_id/payments", h.Payment.RecordPayment)

	g.GET("/payments/mine", h.Payment.ListOwnPayments)
	g.GET("/credit-score", h.Payment.CreditScore)

	g.GET("/admin/users", h.Admin.ListUsers)
	g.GET("/admin/borrowers", h.Admin.ListBorrowers)
	g.DELETE("/admin/users/:user_id", h.Admin.DeleteUser)
	g.PATCH("/admin/users/:user_id/role", h.Admin.SetUserRole)
	g.GET("/admin/applications", h.Admin.ListAllApplications)
	g.GET("/admin/offers", h.Admin.ListAllOffers)
	g.GET("/admin/payments", h.Admin.ListAllPayments)
}

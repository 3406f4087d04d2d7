package admin

import (
	"lendlink-backend/internal/domain/application"
	"lendlink-backend/internal/domain/payment"
	"lendlink-backend/internal/domain/user"
)

// BorrowerOverviewDTO is the admin dashboard row: the borrower, their
// full application and repayment history, and the admin-view score.
type BorrowerOverviewDTO struct {
	User         user.User                     `json:"user"`
	Applications []application.LoanApplication `json:"applications"`
	Payments     []payment.Record              `json:"payments"`
	CreditScore  int                           `json:"credit_score"`
}

type SetRoleInput struct {
	Role string `json:"role"`
}

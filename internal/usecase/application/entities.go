package application

import "time"

type CreateApplicationInput struct {
	OfferID       string  `json:"offer_id"`
	NationalID    string  `json:"national_id"`
	MonthlySalary float64 `json:"monthly_salary"`
	Reason        string  `json:"reason"`
}

type ApplicationDTO struct {
	ApplicationID   string    `json:"application_id"`
	BorrowerID      string    `json:"borrower_id"`
	OfferID         string    `json:"offer_id"`
	NationalID      string    `json:"national_id"`
	MonthlySalary   float64   `json:"monthly_salary"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	StatusUpdatedAt time.Time `json:"status_updated_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// PaymentSummary is the repayment slice of the lender view. Nil in the
// enclosing DTO means no record exists yet (application not approved).
type PaymentSummary struct {
	RecordID   string  `json:"record_id"`
	AmountPaid float64 `json:"amount_paid"`
	EntryCount int     `json:"entry_count"`
}

type ApplicationWithPaymentDTO struct {
	ApplicationDTO
	Payment *PaymentSummary `json:"payment,omitempty"`
}

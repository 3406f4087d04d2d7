package payment

import "time"

type RecordPaymentInput struct {
	Amount float64 `json:"amount"`
}

type EntryDTO struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
	Status string    `json:"status,omitempty"`
}

type RecordDTO struct {
	RecordID      string     `json:"record_id"`
	ApplicationID string     `json:"application_id"`
	AmountPaid    float64    `json:"amount_paid"`
	Payments      []EntryDTO `json:"payments"`
}

// RecordWithTermsDTO is the borrower view: the ledger plus the terms of
// the offer the application was made against.
type RecordWithTermsDTO struct {
	RecordDTO
	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
}

type CreditScoreDTO struct {
	BorrowerID string `json:"borrower_id"`
	Score      int    `json:"score"`
}

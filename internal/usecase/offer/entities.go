package offer

import "time"

type CreateOfferInput struct {
	Amount        float64 `json:"amount"`
	InterestRate  float64 `json:"interest_rate"`
	MaxTermMonths int     `json:"max_term_months"`
}

type OfferDTO struct {
	OfferID       string    `json:"offer_id"`
	LenderID      string    `json:"lender_id"`
	Amount        float64   `json:"amount"`
	InterestRate  float64   `json:"interest_rate"`
	MaxTermMonths int       `json:"max_term_months"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// ActiveOfferDTO is the borrower-facing view: the offer plus the owning
// lender's public name. LenderName is empty when the lender record is gone.
type ActiveOfferDTO struct {
	OfferDTO
	LenderName string `json:"lender_name,omitempty"`
}

package offer

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("offer not found")

type LoanOffer struct {
	ID            uint64  `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	OfferID       string  `gorm:"column:offer_id;type:char(32);not null;uniqueIndex:ux_offers_offer_id" json:"offer_id"`
	LenderID      string  `gorm:"column:lender_id;type:char(32);not null;index:idx_offers_lender" json:"lender_id"`
	Amount        float64 `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	InterestRate  float64 `gorm:"column:interest_rate;type:decimal(6,4)" json:"interest_rate"`
	MaxTermMonths int     `gorm:"column:max_term_months" json:"max_term_months"`
	// Flips to false exactly once, when an application against this offer
	// is approved. Never reactivated.
	IsActive  bool           `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (LoanOffer) TableName() string { return "loan_offers" }

package application

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

var (
	ErrNotFound      = errors.New("application not found")
	ErrOfferInactive = errors.New("offer is not active")
	ErrNotOfferOwner = errors.New("lender does not own the referenced offer")
	ErrNotOwner      = errors.New("borrower does not own the application")
	ErrBadStatus     = errors.New("status must be approved or rejected")
)

type LoanApplication struct {
	ID            uint64  `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ApplicationID string  `gorm:"column:application_id;type:char(32);not null;uniqueIndex:ux_applications_application_id" json:"application_id"`
	BorrowerID    string  `gorm:"column:borrower_id;type:char(32);not null;index:idx_applications_borrower" json:"borrower_id"`
	OfferID       string  `gorm:"column:offer_id;type:char(32);not null;index:idx_applications_offer" json:"offer_id"`
	NationalID    string  `gorm:"column:national_id;size:64;not null" json:"national_id"`
	MonthlySalary float64 `gorm:"column:monthly_salary;type:decimal(18,2)" json:"monthly_salary"`
	Reason        string  `gorm:"column:reason;type:text" json:"reason"`
	// Only field that may change after creation.
	Status          Status         `gorm:"column:status;type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at;autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (LoanApplication) TableName() string { return "loan_applications" }

package payment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("payment record not found")

// Record is the running repayment ledger for one approved application.
// The unique index on application_id enforces at most one record per
// application; creation happens lazily at approval time.
type Record struct {
	ID            uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RecordID      string         `gorm:"column:record_id;type:char(32);not null;uniqueIndex:ux_payment_records_record_id" json:"record_id"`
	ApplicationID string         `gorm:"column:application_id;type:char(32);not null;uniqueIndex:ux_payment_records_application" json:"application_id"`
	AmountPaid    float64        `gorm:"column:amount_paid;type:decimal(18,2);default:0" json:"amount_paid"`
	Entries       []Entry        `gorm:"foreignKey:RecordID;references:RecordID" json:"payments"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Record) TableName() string { return "payment_records" }

// Entry is one repayment. Status exists in the schema but nothing writes
// it; the borrower-view scorer still reads it (see credit.ForBorrower).
type Entry struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RecordID  string    `gorm:"column:record_id;type:char(32);not null;index:idx_payment_entries_record" json:"-"`
	PaidAt    time.Time `gorm:"column:paid_at;not null" json:"date"`
	Amount    float64   `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	Status    string    `gorm:"column:status;size:16" json:"status,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Entry) TableName() string { return "payment_entries" }

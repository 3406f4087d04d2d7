package mysql

import (
	"context"

	paymentDomain "lendlink-backend/internal/domain/payment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

// CreateIfAbsent relies on the unique index on application_id: a second
// insert for the same application is a no-op, not an error.
func (r *PaymentRepository) CreateIfAbsent(ctx context.Context, rec *paymentDomain.Record) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "application_id"}},
			DoNothing: true,
		}).
		Create(rec).Error
}

func (r *PaymentRepository) GetByApplicationID(ctx context.Context, applicationID string) (*paymentDomain.Record, error) {
	var out paymentDomain.Record
	res := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("payment_entries.id ASC") }).
		Where("application_id = ?", applicationID).
		First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) ListByApplicationIDs(ctx context.Context, applicationIDs []string) ([]paymentDomain.Record, error) {
	if len(applicationIDs) == 0 {
		return nil, nil
	}
	var out []paymentDomain.Record
	res := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("payment_entries.id ASC") }).
		Where("application_id IN ?", applicationIDs).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) List(ctx context.Context) ([]paymentDomain.Record, error) {
	var out []paymentDomain.Record
	res := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("payment_entries.id ASC") }).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// AppendEntry increments the running total in SQL and inserts the entry in
// one transaction, so concurrent repayments on the same application cannot
// lose updates.
func (r *PaymentRepository) AppendEntry(ctx context.Context, applicationID string, e *paymentDomain.Entry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&paymentDomain.Record{}).
			Where("application_id = ?", applicationID).
			UpdateColumn("amount_paid", gorm.Expr("amount_paid + ?", e.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var rec paymentDomain.Record
		if err := tx.Select("record_id").Where("application_id = ?", applicationID).First(&rec).Error; err != nil {
			return err
		}
		e.RecordID = rec.RecordID
		return tx.Create(e).Error
	})
}

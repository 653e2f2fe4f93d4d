package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sixjars/backend/internal/expense"
)

// ExpenseRecord is one row of the expense projection: a single external
// expense counted against a single tracking relationship.
//
// The unique index over (expense_id, jar_category_id) makes replayed
// expense events idempotent: re-inserting the same record is a conflict
// that the tracker treats as success.
type ExpenseRecord struct {
	DefaultModel
	ExpenseID     uuid.UUID           `json:"expenseId" gorm:"uniqueIndex:record_expense_tracking;index"` // External expense this record mirrors
	JarCategoryID uuid.UUID           `json:"jarCategoryId" gorm:"uniqueIndex:record_expense_tracking"`   // Tracking row that caused this record
	JarCategory   JarCategory         `json:"-" gorm:"constraint:OnDelete:CASCADE"`                       // The owning tracking row
	CategoryID    uuid.UUID           `json:"categoryId"`                                                 // Category snapshot at recording time
	Amount        decimal.Decimal     `json:"amount" gorm:"type:DECIMAL(20,8)"`                           // Amount of the expense
	Currency      string              `json:"currency"`                                                   // Currency of the expense
	PaymentType   expense.PaymentType `json:"paymentType"`                                                // How the expense was paid
	Date          time.Time           `json:"expenseDate"`                                                // Date the expense happened
}

// AfterFind updates the expense date to use UTC as timezone.
func (r *ExpenseRecord) AfterFind(tx *gorm.DB) error {
	err := r.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	r.Date = r.Date.In(time.UTC)
	return nil
}

// BeforeSave sets the timezone for the expense date to UTC.
func (r *ExpenseRecord) BeforeSave(_ *gorm.DB) error {
	r.Date = r.Date.In(time.UTC)
	return nil
}

// Matches reports whether the record was created for the given category.
func (r ExpenseRecord) Matches(categoryID uuid.UUID) bool {
	return r.CategoryID == categoryID
}

package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sixjars/backend/internal/currency"
)

// MaxNameLength is the maximum length for plan and jar names.
const MaxNameLength = 255

// Plan represents a spending plan.
//
// A plan is the highest level of organization, it splits one account's
// budgeted amount across percentage based jars.
type Plan struct {
	DefaultModel
	AccountID   uuid.UUID       `json:"accountId" gorm:"uniqueIndex:plan_account_name"`                            // Account the plan belongs to
	Name        string          `json:"name" gorm:"uniqueIndex:plan_account_name" example:"My classic spending plan"` // Name of the plan, unique per account
	Description string          `json:"description" example:"Monthly budget"`                                      // Optional details about the plan
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1000"`                           // Total amount split across jars
	Currency    string          `json:"currency" example:"EUR"`                                                    // ISO 4217 currency code
	Jars        []Jar           `json:"-" gorm:"constraint:OnDelete:CASCADE"`                                      // Jars owned by the plan
}

func (p *Plan) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Currency = currency.Normalize(p.Currency)

	if p.Name == "" {
		return ErrNameEmpty
	}

	if len(p.Name) > MaxNameLength {
		return ErrNameTooLong
	}

	if !p.Amount.IsPositive() {
		return ErrPlanAmountNotPositive
	}

	if !currency.Valid(p.Currency) {
		return ErrCurrencyInvalid
	}

	return nil
}

// TotalJarPercentage returns the sum of the percentages of all jars that
// currently belong to the plan. It queries with tx so that callers holding
// a lock on the plan row see a consistent snapshot.
func (p Plan) TotalJarPercentage(tx *gorm.DB) (uint, error) {
	var total uint

	err := tx.Model(&Jar{}).
		Where("plan_id = ?", p.ID).
		Select("COALESCE(SUM(percentage), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

// Same reports whether an update would leave the plan unchanged.
func (p Plan) Same(name string, amount decimal.Decimal, currencyCode, description string) bool {
	return p.Name == name &&
		p.Amount.Equal(amount) &&
		p.Currency == currency.Normalize(currencyCode) &&
		p.Description == description
}

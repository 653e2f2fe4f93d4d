package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Jar is a percentage based sub-allocation of a plan's amount.
//
// The percentage is fixed at creation. The target amount is derived from
// the owning plan's amount and is recomputed whenever that amount changes.
type Jar struct {
	DefaultModel
	PlanID       uuid.UUID       `json:"planId" gorm:"uniqueIndex:jar_plan_name"`                  // Plan the jar belongs to
	Plan         Plan            `json:"-"`                                                        // The owning plan
	Name         string          `json:"name" gorm:"uniqueIndex:jar_plan_name" example:"Necessities"` // Name of the jar, unique per plan
	Description  string          `json:"description" example:"Rent, food, bills"`                  // Optional details about the jar
	Percentage   uint            `json:"percentage" example:"55"`                                  // Share of the plan amount, 1-100
	TargetAmount decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)" example:"550"`     // Derived amount to reach
	Currency     string          `json:"currency" example:"EUR"`                                   // Currency of the plan
}

func (j *Jar) BeforeSave(_ *gorm.DB) error {
	j.Name = strings.TrimSpace(j.Name)
	j.Description = strings.TrimSpace(j.Description)

	if j.Name == "" {
		return ErrNameEmpty
	}

	if len(j.Name) > MaxNameLength {
		return ErrNameTooLong
	}

	if j.Percentage < 1 || j.Percentage > 100 {
		return ErrJarPercentageOutOfRange
	}

	if !j.TargetAmount.IsPositive() {
		return ErrJarTargetNotPositive
	}

	return nil
}

// TargetFor computes the amount a jar has to reach for a plan amount and a
// percentage: amount * percentage / 100, rounded half up to 2 decimals.
func TargetFor(planAmount decimal.Decimal, percentage uint) decimal.Decimal {
	return planAmount.
		Mul(decimal.NewFromUint64(uint64(percentage))).
		Div(decimal.NewFromInt(100)).
		Round(2)
}

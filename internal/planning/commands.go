// Package planning implements the spending plan commands: plan creation
// and update, jar allocation, category tracking and the classic plan
// builder, together with their read side queries.
//
// All commands validate their input first and accumulate every field
// violation instead of failing on the first one. Failures are returned as
// the types of the failure package, never panicked.
package planning

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sixjars/backend/internal/currency"
	"github.com/sixjars/backend/internal/failure"
	"github.com/sixjars/backend/internal/models"
)

// Field names used in validation failures.
const (
	FieldAccountID    = "accountId"
	FieldName         = "name"
	FieldAmount       = "amount"
	FieldCurrencyCode = "currencyCode"
	FieldPercentage   = "percentage"
	FieldCategories   = "categories"
)

// PlanCommand carries the input for creating or updating a plan.
type PlanCommand struct {
	AccountID    uuid.UUID       `json:"accountId"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Description  string          `json:"description"`
}

func (c PlanCommand) validate() []failure.FieldViolation {
	var violations []failure.FieldViolation

	violations = append(violations, validateName(c.Name)...)

	if c.AccountID == uuid.Nil {
		violations = append(violations, failure.FieldViolation{
			Field:   FieldAccountID,
			Message: "AccountId cannot be empty.",
		})
	}

	if !c.Amount.IsPositive() {
		violations = append(violations, failure.FieldViolation{
			Field:         FieldAmount,
			Message:       "Amount must be a positive value.",
			RejectedValue: c.Amount,
		})
	}

	if !currency.Valid(c.CurrencyCode) {
		violations = append(violations, failure.FieldViolation{
			Field:         FieldCurrencyCode,
			Message:       "CurrencyCode is not valid.",
			RejectedValue: c.CurrencyCode,
		})
	}

	return violations
}

// JarCommand carries the input for allocating a new jar on a plan.
type JarCommand struct {
	Name        string `json:"name"`
	Percentage  uint   `json:"percentage"`
	Description string `json:"description"`
}

func (c JarCommand) validate() []failure.FieldViolation {
	violations := validateName(c.Name)

	if c.Percentage < 1 || c.Percentage > 100 {
		violations = append(violations, failure.FieldViolation{
			Field:         FieldPercentage,
			Message:       "Percentage must be between 1 and 100.",
			RejectedValue: c.Percentage,
		})
	}

	return violations
}

// CategoryChange toggles the tracking of one category on a jar. A nil Add
// defaults to true.
type CategoryChange struct {
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Add          *bool     `json:"toAdd"`
}

// add resolves the default for the Add flag.
func (c CategoryChange) add() bool {
	return c.Add == nil || *c.Add
}

func validateCategoryChanges(changes []CategoryChange) []failure.FieldViolation {
	if len(changes) == 0 {
		return []failure.FieldViolation{{
			Field:         FieldCategories,
			Message:       "At least one category must be provided.",
			RejectedValue: changes,
		}}
	}

	seen := make(map[uuid.UUID]bool, len(changes))
	for _, change := range changes {
		if change.CategoryID == uuid.Nil {
			return []failure.FieldViolation{{
				Field:         FieldCategories,
				Message:       "Empty categoryId not allowed.",
				RejectedValue: changes,
			}}
		}

		if seen[change.CategoryID] {
			return []failure.FieldViolation{{
				Field:         FieldCategories,
				Message:       "Duplicate category ids provided.",
				RejectedValue: changes,
			}}
		}
		seen[change.CategoryID] = true
	}

	return nil
}

func validateName(name string) []failure.FieldViolation {
	// Persistence trims names before saving, so a whitespace-only name is
	// as empty as an empty one.
	if strings.TrimSpace(name) == "" {
		return []failure.FieldViolation{{
			Field:   FieldName,
			Message: "Name cannot be empty.",
		}}
	}

	if len(strings.TrimSpace(name)) > models.MaxNameLength {
		return []failure.FieldViolation{{
			Field:         FieldName,
			Message:       fmt.Sprintf("Name length cannot exceed %d characters.", models.MaxNameLength),
			RejectedValue: name,
		}}
	}

	return nil
}

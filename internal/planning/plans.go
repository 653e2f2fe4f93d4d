package planning

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sixjars/backend/internal/currency"
	"github.com/sixjars/backend/internal/failure"
	"github.com/sixjars/backend/internal/models"
)

// Messages returned with plan failures.
const (
	CreatePlanValidationMessage = "Validation failed for the create spending plan request."
	UpdatePlanValidationMessage = "Validation failed for the update spending plan request."
	PlanNotFoundMessage         = "Spending plan was not found."
	PlanNameDuplicateFormat     = "Spending plan name '%s' already exists."
)

// CreatePlan creates a new plan with an empty jar set.
func CreatePlan(cmd PlanCommand) (models.Plan, error) {
	if violations := cmd.validate(); len(violations) > 0 {
		return models.Plan{}, failure.OfValidation(CreatePlanValidationMessage, violations)
	}

	var plan models.Plan
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		plan, err = createPlan(tx, cmd)
		return err
	})
	if err != nil {
		return models.Plan{}, err
	}

	log.Debug().Str("plan", plan.ID.String()).Msg("spending plan created")
	return plan, nil
}

func createPlan(tx *gorm.DB, cmd PlanCommand) (models.Plan, error) {
	exists, err := planNameTaken(tx, cmd.AccountID, cmd.Name, uuid.Nil)
	if err != nil {
		return models.Plan{}, err
	}
	if exists {
		return models.Plan{}, failure.OfConflict(fmt.Sprintf(PlanNameDuplicateFormat, cmd.Name))
	}

	plan := models.Plan{
		AccountID:   cmd.AccountID,
		Name:        cmd.Name,
		Description: cmd.Description,
		Amount:      cmd.Amount,
		Currency:    currency.Normalize(cmd.CurrencyCode),
	}

	err = tx.Create(&plan).Error
	if errors.Is(err, models.ErrPlanNameNotUnique) {
		// Backstop for a concurrent insert slipping past the check above
		return models.Plan{}, failure.OfConflict(fmt.Sprintf(PlanNameDuplicateFormat, cmd.Name))
	}
	if err != nil {
		return models.Plan{}, err
	}

	return plan, nil
}

// UpdatePlan applies new values to a plan. When the numeric amount changes,
// the target amounts of all jars belonging to the plan are recomputed in
// the same transaction. An update that changes nothing is a no-op.
func UpdatePlan(planID uuid.UUID, cmd PlanCommand) (models.Plan, error) {
	if violations := cmd.validate(); len(violations) > 0 {
		return models.Plan{}, failure.OfValidation(UpdatePlanValidationMessage, violations)
	}

	var plan models.Plan
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		err := models.LockForUpdate(tx).First(&plan, "id = ?", planID).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			return failure.OfNotFound(PlanNotFoundMessage)
		}
		if err != nil {
			return err
		}

		if plan.Same(cmd.Name, cmd.Amount, cmd.CurrencyCode, cmd.Description) {
			log.Debug().Str("plan", planID.String()).Msg("plan update skipped, no changes found")
			return nil
		}

		if plan.Name != cmd.Name {
			taken, err := planNameTaken(tx, plan.AccountID, cmd.Name, plan.ID)
			if err != nil {
				return err
			}
			if taken {
				return failure.OfConflict(fmt.Sprintf(PlanNameDuplicateFormat, cmd.Name))
			}
		}

		amountChanged := !plan.Amount.Equal(cmd.Amount)

		plan.Name = cmd.Name
		plan.Description = cmd.Description
		plan.Amount = cmd.Amount
		plan.Currency = currency.Normalize(cmd.CurrencyCode)

		err = tx.Save(&plan).Error
		if errors.Is(err, models.ErrPlanNameNotUnique) {
			// A concurrent rename, or a name that only differs by
			// whitespace from an existing one, slips past the check above
			// and hits the unique index instead.
			return failure.OfConflict(fmt.Sprintf(PlanNameDuplicateFormat, cmd.Name))
		}
		if err != nil {
			return err
		}

		if amountChanged {
			return recalculateJars(tx, plan)
		}

		return nil
	})
	if err != nil {
		return models.Plan{}, err
	}

	return plan, nil
}

// recalculateJars recomputes the target amount of every jar of the plan
// from its stored percentage and the plan's new amount. Percentages are
// never touched.
func recalculateJars(tx *gorm.DB, plan models.Plan) error {
	var jars []models.Jar
	err := tx.Where("plan_id = ?", plan.ID).Find(&jars).Error
	if err != nil {
		return err
	}

	for _, jar := range jars {
		jar.TargetAmount = models.TargetFor(plan.Amount, jar.Percentage)
		jar.Currency = plan.Currency

		err = tx.Save(&jar).Error
		if err != nil {
			return err
		}
	}

	log.Debug().Str("plan", plan.ID.String()).Int("jars", len(jars)).Msg("jar target amounts recalculated")
	return nil
}

// planNameTaken reports whether another plan of the account already uses
// the name. The plan identified by exclude is ignored so that updates can
// keep their own name.
func planNameTaken(tx *gorm.DB, accountID uuid.UUID, name string, exclude uuid.UUID) (bool, error) {
	var count int64

	q := tx.Model(&models.Plan{}).
		Where("account_id = ? AND name = ?", accountID, name)
	if exclude != uuid.Nil {
		q = q.Where("id != ?", exclude)
	}

	err := q.Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

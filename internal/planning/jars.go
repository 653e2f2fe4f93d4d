package planning

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sixjars/backend/internal/failure"
	"github.com/sixjars/backend/internal/models"
)

// Messages returned with jar failures.
const (
	CreateJarValidationMessage = "Failed to validate the request to create a spending jar."
	JarNameDuplicateFormat     = "Jar name '%s' already exists for the provided spending plan."
)

// CreateJar allocates a new jar on a plan.
//
// The plan row is locked for the duration of the transaction so that two
// concurrent allocations cannot both pass the percentage check and push the
// total over 100.
func CreateJar(planID uuid.UUID, cmd JarCommand) (models.Jar, error) {
	if violations := cmd.validate(); len(violations) > 0 {
		return models.Jar{}, failure.OfValidation(CreateJarValidationMessage, violations)
	}

	var jar models.Jar
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		jar, err = createJar(tx, planID, cmd)
		return err
	})
	if err != nil {
		return models.Jar{}, err
	}

	log.Debug().Str("jar", jar.ID.String()).Str("plan", planID.String()).Msg("spending jar created")
	return jar, nil
}

func createJar(tx *gorm.DB, planID uuid.UUID, cmd JarCommand) (models.Jar, error) {
	var plan models.Plan
	err := models.LockForUpdate(tx).First(&plan, "id = ?", planID).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Jar{}, failure.OfNotFound(PlanNotFoundMessage)
	}
	if err != nil {
		return models.Jar{}, err
	}

	var count int64
	err = tx.Model(&models.Jar{}).
		Where("plan_id = ? AND name = ?", plan.ID, cmd.Name).
		Count(&count).Error
	if err != nil {
		return models.Jar{}, err
	}
	if count > 0 {
		return models.Jar{}, failure.OfConflict(fmt.Sprintf(JarNameDuplicateFormat, cmd.Name))
	}

	existingTotal, err := plan.TotalJarPercentage(tx)
	if err != nil {
		return models.Jar{}, err
	}
	if existingTotal+cmd.Percentage > 100 {
		return models.Jar{}, failure.OfValidation(CreateJarValidationMessage, []failure.FieldViolation{{
			Field:         FieldPercentage,
			Message:       fmt.Sprintf("Maximum available percentage '%d'.", 100-existingTotal),
			RejectedValue: cmd.Percentage,
		}})
	}

	jar := models.Jar{
		PlanID:       plan.ID,
		Name:         cmd.Name,
		Description:  cmd.Description,
		Percentage:   cmd.Percentage,
		TargetAmount: models.TargetFor(plan.Amount, cmd.Percentage),
		Currency:     plan.Currency,
	}

	err = tx.Create(&jar).Error
	if errors.Is(err, models.ErrJarNameNotUnique) {
		return models.Jar{}, failure.OfConflict(fmt.Sprintf(JarNameDuplicateFormat, cmd.Name))
	}
	if err != nil {
		return models.Jar{}, err
	}

	return jar, nil
}

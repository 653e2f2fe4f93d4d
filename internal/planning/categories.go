package planning

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sixjars/backend/internal/failure"
	"github.com/sixjars/backend/internal/models"
)

// Messages returned with tracking failures.
const (
	JarCategoriesValidationMessage = "Failed to validate the request to add or remove categories to plan jar."
	PlanJarNotFoundMessage         = "Spending plan jar was not found."
)

// ModifyJarCategories applies a batch of tracking changes to a jar as one
// diff: removals first, then additions for categories not yet tracked.
// Removing an untracked category is a no-op; adding a tracked one keeps the
// existing row. It returns the rows that were created.
func ModifyJarCategories(planID, jarID uuid.UUID, changes []CategoryChange) ([]models.JarCategory, error) {
	if violations := validateCategoryChanges(changes); len(violations) > 0 {
		return nil, failure.OfValidation(JarCategoriesValidationMessage, violations)
	}

	var created []models.JarCategory
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var jar models.Jar
		err := tx.First(&jar, "id = ? AND plan_id = ?", jarID, planID).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			return failure.OfNotFound(PlanJarNotFoundMessage)
		}
		if err != nil {
			return err
		}

		// Deletions first so that toggling a category off and on in one
		// request leaves exactly one row.
		for _, change := range changes {
			if change.add() {
				continue
			}

			// Hard delete: a soft deleted row would still occupy the
			// (jar, category) unique index and block re-adding.
			err = tx.Unscoped().
				Where("jar_id = ? AND category_id = ?", jar.ID, change.CategoryID).
				Delete(&models.JarCategory{}).Error
			if err != nil {
				return err
			}
		}

		for _, change := range changes {
			if !change.add() {
				continue
			}

			var count int64
			err = tx.Model(&models.JarCategory{}).
				Where("jar_id = ? AND category_id = ?", jar.ID, change.CategoryID).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			tracking := models.JarCategory{
				JarID:        jar.ID,
				CategoryID:   change.CategoryID,
				CategoryName: change.CategoryName,
			}

			err = tx.Create(&tracking).Error
			if err != nil {
				return err
			}

			created = append(created, tracking)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("jar", jarID.String()).
		Int("created", len(created)).
		Msg("jar tracking categories modified")

	return created, nil
}

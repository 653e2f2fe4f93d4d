package planning

import (
	"errors"

	"github.com/google/uuid"

	"github.com/sixjars/backend/internal/failure"
	"github.com/sixjars/backend/internal/models"
)

// GetPlan returns one plan by ID.
func GetPlan(planID uuid.UUID) (models.Plan, error) {
	var plan models.Plan
	err := models.DB.First(&plan, "id = ?", planID).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Plan{}, failure.OfNotFound(PlanNotFoundMessage)
	}
	if err != nil {
		return models.Plan{}, err
	}

	return plan, nil
}

// PlansForAccount returns all plans of one account, ordered by name.
func PlansForAccount(accountID uuid.UUID) ([]models.Plan, error) {
	var plans []models.Plan
	err := models.DB.
		Where("account_id = ?", accountID).
		Order("name ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}

	return plans, nil
}

// GetJar returns one jar scoped to its plan.
func GetJar(planID, jarID uuid.UUID) (models.Jar, error) {
	var jar models.Jar
	err := models.DB.First(&jar, "id = ? AND plan_id = ?", jarID, planID).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Jar{}, failure.OfNotFound(PlanJarNotFoundMessage)
	}
	if err != nil {
		return models.Jar{}, err
	}

	return jar, nil
}

// JarsForPlan returns all jars of one plan, ordered by name.
func JarsForPlan(planID uuid.UUID) ([]models.Jar, error) {
	var jars []models.Jar
	err := models.DB.
		Where("plan_id = ?", planID).
		Order("name ASC").
		Find(&jars).Error
	if err != nil {
		return nil, err
	}

	return jars, nil
}

// CategoriesForJar returns the tracking rows of one jar.
func CategoriesForJar(planID, jarID uuid.UUID) ([]models.JarCategory, error) {
	// Resolve the jar first so that a bad plan/jar pair is a NotFound, not
	// an empty list.
	jar, err := GetJar(planID, jarID)
	if err != nil {
		return nil, err
	}

	var trackings []models.JarCategory
	err = models.DB.
		Where("jar_id = ?", jar.ID).
		Order("created_at ASC").
		Find(&trackings).Error
	if err != nil {
		return nil, err
	}

	return trackings, nil
}

// RecordsForJar returns the expense records currently counted against one
// jar, newest expense first.
func RecordsForJar(planID, jarID uuid.UUID) ([]models.ExpenseRecord, error) {
	jar, err := GetJar(planID, jarID)
	if err != nil {
		return nil, err
	}

	var records []models.ExpenseRecord
	err = models.DB.
		Joins("JOIN jar_categories ON jar_categories.id = expense_records.jar_category_id").
		Where("jar_categories.jar_id = ?", jar.ID).
		Order("expense_records.date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

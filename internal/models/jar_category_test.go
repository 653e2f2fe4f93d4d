package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sixjars/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestJarCategoryUniquePerJar() {
	plan := suite.createTestPlan(models.Plan{AccountID: uuid.New(), Name: "Monthly", Amount: decimal.NewFromInt(1000)})
	jar := suite.createTestJar(models.Jar{PlanID: plan.ID, Name: "Necessities", Percentage: 55, TargetAmount: decimal.NewFromInt(550)})

	categoryID := uuid.New()
	_ = suite.createTestJarCategory(models.JarCategory{JarID: jar.ID, CategoryID: categoryID, CategoryName: "Groceries"})

	duplicate := models.JarCategory{JarID: jar.ID, CategoryID: categoryID}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryAlreadyTracked)

	// The same category can be tracked by another jar
	other := suite.createTestJar(models.Jar{PlanID: plan.ID, Name: "Fun", Percentage: 10, TargetAmount: decimal.NewFromInt(100)})
	tracking := models.JarCategory{JarID: other.ID, CategoryID: categoryID}
	err = models.DB.Create(&tracking).Error
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestJarCategoryReaddAfterRemoval() {
	plan := suite.createTestPlan(models.Plan{AccountID: uuid.New(), Name: "Monthly", Amount: decimal.NewFromInt(1000)})
	jar := suite.createTestJar(models.Jar{PlanID: plan.ID, Name: "Necessities", Percentage: 55, TargetAmount: decimal.NewFromInt(550)})

	categoryID := uuid.New()
	tracking := suite.createTestJarCategory(models.JarCategory{JarID: jar.ID, CategoryID: categoryID})

	// Removal has to free the unique index so the category can be tracked again
	err := models.DB.Unscoped().Delete(&tracking).Error
	assert.NoError(suite.T(), err)

	again := models.JarCategory{JarID: jar.ID, CategoryID: categoryID}
	err = models.DB.Create(&again).Error
	assert.NoError(suite.T(), err)
}

package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sixjars/backend/internal/expense"
	"github.com/sixjars/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseRecordUniquePerTracking() {
	plan := suite.createTestPlan(models.Plan{AccountID: uuid.New(), Name: "Monthly", Amount: decimal.NewFromInt(1000)})
	jar := suite.createTestJar(models.Jar{PlanID: plan.ID, Name: "Necessities", Percentage: 55, TargetAmount: decimal.NewFromInt(550)})
	tracking := suite.createTestJarCategory(models.JarCategory{JarID: jar.ID, CategoryID: uuid.New()})

	expenseID := uuid.New()
	record := models.ExpenseRecord{
		ExpenseID:     expenseID,
		JarCategoryID: tracking.ID,
		CategoryID:    tracking.CategoryID,
		Amount:        decimal.NewFromInt(10),
		Currency:      "EUR",
		PaymentType:   expense.PaymentCash,
		Date:          time.Now(),
	}
	err := models.DB.Create(&record).Error
	assert.NoError(suite.T(), err)

	duplicate := models.ExpenseRecord{
		ExpenseID:     expenseID,
		JarCategoryID: tracking.ID,
		CategoryID:    tracking.CategoryID,
		Amount:        decimal.NewFromInt(10),
		Currency:      "EUR",
		PaymentType:   expense.PaymentCash,
		Date:          time.Now(),
	}
	err = models.DB.Create(&duplicate).Error
	assert.Error(suite.T(), err)
}

func (suite *TestSuiteStandard) TestExpenseRecordDateUTC() {
	plan := suite.createTestPlan(models.Plan{AccountID: uuid.New(), Name: "Monthly", Amount: decimal.NewFromInt(1000)})
	jar := suite.createTestJar(models.Jar{PlanID: plan.ID, Name: "Necessities", Percentage: 55, TargetAmount: decimal.NewFromInt(550)})
	tracking := suite.createTestJarCategory(models.JarCategory{JarID: jar.ID, CategoryID: uuid.New()})

	tz := time.FixedZone("UTC+7", 7*60*60)
	record := models.ExpenseRecord{
		ExpenseID:     uuid.New(),
		JarCategoryID: tracking.ID,
		CategoryID:    tracking.CategoryID,
		Amount:        decimal.NewFromInt(10),
		Currency:      "EUR",
		PaymentType:   expense.PaymentCard,
		Date:          time.Date(2023, 4, 12, 9, 30, 0, 0, tz),
	}
	err := models.DB.Create(&record).Error
	assert.NoError(suite.T(), err)

	var loaded models.ExpenseRecord
	err = models.DB.First(&loaded, record.ID).Error
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), time.UTC, loaded.Date.Location())
	assert.True(suite.T(), loaded.Date.Equal(record.Date))
}

func (suite *TestSuiteStandard) TestExpenseRecordMatches() {
	categoryID := uuid.New()
	record := models.ExpenseRecord{CategoryID: categoryID}

	assert.True(suite.T(), record.Matches(categoryID))
	assert.False(suite.T(), record.Matches(uuid.New()))
}

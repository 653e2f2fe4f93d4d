package models_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sixjars/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestJarBeforeSave() {
	tests := []struct {
		name string
		jar  models.Jar
		err  error
	}{
		{
			"valid",
			models.Jar{Name: "Necessities", Percentage: 55, TargetAmount: decimal.NewFromInt(550)},
			nil,
		},
		{
			"empty name",
			models.Jar{Name: " \t", Percentage: 55, TargetAmount: decimal.NewFromInt(550)},
			models.ErrNameEmpty,
		},
		{
			"name too long",
			models.Jar{Name: strings.Repeat("j", 256), Percentage: 55, TargetAmount: decimal.NewFromInt(550)},
			models.ErrNameTooLong,
		},
		{
			"zero percentage",
			models.Jar{Name: "Necessities", Percentage: 0, TargetAmount: decimal.NewFromInt(550)},
			models.ErrJarPercentageOutOfRange,
		},
		{
			"percentage above hundred",
			models.Jar{Name: "Necessities", Percentage: 101, TargetAmount: decimal.NewFromInt(550)},
			models.ErrJarPercentageOutOfRange,
		},
		{
			"zero target",
			models.Jar{Name: "Necessities", Percentage: 55, TargetAmount: decimal.Zero},
			models.ErrJarTargetNotPositive,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.jar.BeforeSave(&gorm.DB{})
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestJarNameUniquePerPlan() {
	plan := suite.createTestPlan(models.Plan{AccountID: uuid.New(), Name: "Monthly", Amount: decimal.NewFromInt(1000)})
	_ = suite.createTestJar(models.Jar{PlanID: plan.ID, Name: "Necessities", Percentage: 55, TargetAmount: decimal.NewFromInt(550)})

	duplicate := models.Jar{PlanID: plan.ID, Name: "Necessities", Percentage: 10, TargetAmount: decimal.NewFromInt(100), Currency: "EUR"}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrJarNameNotUnique)

	// The same name is fine on another plan
	other := suite.createTestPlan(models.Plan{AccountID: uuid.New(), Name: "Monthly", Amount: decimal.NewFromInt(1000)})
	jar := models.Jar{PlanID: other.ID, Name: "Necessities", Percentage: 55, TargetAmount: decimal.NewFromInt(550), Currency: "EUR"}
	err = models.DB.Create(&jar).Error
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestTargetFor() {
	tests := []struct {
		amount     string
		percentage uint
		target     string
	}{
		{"1000", 55, "550"},
		{"1000", 5, "50"},
		{"100.50", 33, "33.17"},  // 33.165 rounds half up
		{"999.99", 1, "10"},      // 9.9999 rounds to 10.00
		{"0.01", 1, "0"},         // 0.0001 rounds to 0.00
		{"1234.56", 100, "1234.56"},
	}

	for _, tt := range tests {
		target := models.TargetFor(decimal.RequireFromString(tt.amount), tt.percentage)
		assert.True(suite.T(), target.Equal(decimal.RequireFromString(tt.target)), "TargetFor(%s, %d) = %s, want %s", tt.amount, tt.percentage, target, tt.target)
	}
}

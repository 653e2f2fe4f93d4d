package planning_test

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sixjars/backend/internal/failure"
	"github.com/sixjars/backend/internal/planning"
)

func boolPtr(b bool) *bool {
	return &b
}

func (suite *TestSuiteStandard) TestModifyJarCategoriesValidation() {
	tests := []struct {
		name    string
		changes []planning.CategoryChange
		message string
	}{
		{
			"no categories",
			nil,
			"At least one category must be provided.",
		},
		{
			"empty category id",
			[]planning.CategoryChange{{CategoryID: uuid.Nil}},
			"Empty categoryId not allowed.",
		},
		{
			"duplicate category ids",
			func() []planning.CategoryChange {
				id := uuid.New()
				return []planning.CategoryChange{{CategoryID: id}, {CategoryID: id, Add: boolPtr(false)}}
			}(),
			"Duplicate category ids provided.",
		},
	}

	for _, tt := range tests {
		_, err := planning.ModifyJarCategories(uuid.New(), uuid.New(), tt.changes)

		var validation failure.Validation
		assert.ErrorAs(suite.T(), err, &validation, tt.name)
		assert.Equal(suite.T(), planning.JarCategoriesValidationMessage, validation.Message, tt.name)
		assert.Len(suite.T(), validation.Violations, 1, tt.name)
		assert.Equal(suite.T(), tt.message, validation.Violations[0].Message, tt.name)
	}
}

func (suite *TestSuiteStandard) TestModifyJarCategoriesJarNotFound() {
	plan := suite.createTestPlan(planning.PlanCommand{})

	_, err := planning.ModifyJarCategories(plan.ID, uuid.New(), []planning.CategoryChange{{CategoryID: uuid.New()}})

	var notFound failure.NotFound
	assert.ErrorAs(suite.T(), err, &notFound)
	assert.Equal(suite.T(), planning.PlanJarNotFoundMessage, notFound.Message)
}

func (suite *TestSuiteStandard) TestModifyJarCategoriesAdd() {
	plan := suite.createTestPlan(planning.PlanCommand{})
	jar := suite.createTestJar(plan.ID, planning.JarCommand{Name: "Necessities", Percentage: 55})

	groceries := uuid.New()
	clothing := uuid.New()

	// A nil Add flag defaults to adding
	created, err := planning.ModifyJarCategories(plan.ID, jar.ID, []planning.CategoryChange{
		{CategoryID: groceries, CategoryName: "Groceries"},
		{CategoryID: clothing, CategoryName: "Clothing", Add: boolPtr(true)},
	})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), created, 2)

	trackings, err := planning.CategoriesForJar(plan.ID, jar.ID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), trackings, 2)
	assert.Equal(suite.T(), "Groceries", trackings[0].CategoryName)
}

func (suite *TestSuiteStandard) TestModifyJarCategoriesAddIsIdempotent() {
	plan := suite.createTestPlan(planning.PlanCommand{})
	jar := suite.createTestJar(plan.ID, planning.JarCommand{Name: "Necessities", Percentage: 55})

	categoryID := uuid.New()
	created, err := planning.ModifyJarCategories(plan.ID, jar.ID, []planning.CategoryChange{{CategoryID: categoryID}})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), created, 1)

	// Adding the same category again keeps the existing row
	created, err = planning.ModifyJarCategories(plan.ID, jar.ID, []planning.CategoryChange{{CategoryID: categoryID}})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), created, 0)

	trackings, err := planning.CategoriesForJar(plan.ID, jar.ID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), trackings, 1)
}

func (suite *TestSuiteStandard) TestModifyJarCategoriesRemove() {
	plan := suite.createTestPlan(planning.PlanCommand{})
	jar := suite.createTestJar(plan.ID, planning.JarCommand{Name: "Necessities", Percentage: 55})

	categoryID := uuid.New()
	_, err := planning.ModifyJarCategories(plan.ID, jar.ID, []planning.CategoryChange{{CategoryID: categoryID}})
	assert.NoError(suite.T(), err)

	_, err = planning.ModifyJarCategories(plan.ID, jar.ID, []planning.CategoryChange{
		{CategoryID: categoryID, Add: boolPtr(false)},
	})
	assert.NoError(suite.T(), err)

	trackings, err := planning.CategoriesForJar(plan.ID, jar.ID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), trackings, 0)

	// Removing a category that is not tracked is a no-op
	_, err = planning.ModifyJarCategories(plan.ID, jar.ID, []planning.CategoryChange{
		{CategoryID: uuid.New(), Add: boolPtr(false)},
	})
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestModifyJarCategoriesMixedBatch() {
	plan := suite.createTestPlan(planning.PlanCommand{})
	jar := suite.createTestJar(plan.ID, planning.JarCommand{Name: "Necessities", Percentage: 55})

	groceries := uuid.New()
	clothing := uuid.New()
	_, err := planning.ModifyJarCategories(plan.ID, jar.ID, []planning.CategoryChange{{CategoryID: groceries}})
	assert.NoError(suite.T(), err)

	created, err := planning.ModifyJarCategories(plan.ID, jar.ID, []planning.CategoryChange{
		{CategoryID: groceries, Add: boolPtr(false)},
		{CategoryID: clothing},
	})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), created, 1)

	trackings, err := planning.CategoriesForJar(plan.ID, jar.ID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), trackings, 1)
	assert.Equal(suite.T(), clothing, trackings[0].CategoryID)
}

package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	v1 "github.com/sixjars/backend/internal/controllers/v1"
	"github.com/sixjars/backend/internal/planning"
	"github.com/sixjars/backend/internal/test"
)

func (suite *TestSuiteStandard) expenseEventBody(eventType string, expenseID, categoryID uuid.UUID, amount string) string {
	return fmt.Sprintf(`{
		"type": %q,
		"expenseId": %q,
		"accountId": %q,
		"categoryId": %q,
		"amount": %s,
		"currency": "EUR",
		"expenseDate": "2023-04-12T00:00:00Z",
		"paymentType": "Cash"
	}`, eventType, expenseID, uuid.New(), categoryID, amount)
}

func (suite *TestSuiteStandard) TestExpenseEventsOptions() {
	recorder := test.Request(suite.T(), suite.router, http.MethodOptions, "/v1/events/expenses", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, recorder)
	assert.Equal(suite.T(), "POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestIngestExpenseEventUnknownType() {
	body := suite.expenseEventBody("expense.exploded", uuid.New(), uuid.New(), "10")
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/events/expenses", body)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, recorder)
}

func (suite *TestSuiteStandard) TestIngestExpenseEventMissingIDs() {
	body := suite.expenseEventBody("expense.created", uuid.Nil, uuid.New(), "10")
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/events/expenses", body)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, recorder)
}

func (suite *TestSuiteStandard) TestIngestExpenseEventBadPaymentType() {
	body := fmt.Sprintf(`{
		"type": "expense.created",
		"expenseId": %q,
		"accountId": %q,
		"categoryId": %q,
		"amount": 10,
		"currency": "EUR",
		"expenseDate": "2023-04-12T00:00:00Z",
		"paymentType": "Cheque"
	}`, uuid.New(), uuid.New(), uuid.New())

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/events/expenses", body)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, recorder)
}

// An accepted event must end up in the projection once the bus has drained.
func (suite *TestSuiteStandard) TestIngestExpenseEvent() {
	plan := suite.createTestPlan(planning.PlanCommand{})
	jar := suite.createTestJar(plan.ID, planning.JarCommand{Name: "Necessities", Percentage: 55})

	categoryID := uuid.New()
	_, err := planning.ModifyJarCategories(plan.ID, jar.ID, []planning.CategoryChange{{CategoryID: categoryID}})
	assert.NoError(suite.T(), err)

	expenseID := uuid.New()
	body := suite.expenseEventBody("expense.created", expenseID, categoryID, "25.50")
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/events/expenses", body)
	test.AssertHTTPStatus(suite.T(), http.StatusAccepted, recorder)

	suite.bus.Wait()

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, suite.jarPath(plan.ID, jar.ID)+"/expenses", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, recorder)

	var response v1.RecordListResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), expenseID, response.Data[0].ExpenseID)
	assert.True(suite.T(), response.Data[0].Amount.Equal(decimal.RequireFromString("25.50")))
}

// The full lifecycle through the ingest endpoint.
func (suite *TestSuiteStandard) TestIngestExpenseEventLifecycle() {
	plan := suite.createTestPlan(planning.PlanCommand{})
	jar := suite.createTestJar(plan.ID, planning.JarCommand{Name: "Necessities", Percentage: 55})

	categoryID := uuid.New()
	_, err := planning.ModifyJarCategories(plan.ID, jar.ID, []planning.CategoryChange{{CategoryID: categoryID}})
	assert.NoError(suite.T(), err)

	expenseID := uuid.New()
	for _, step := range []struct {
		eventType string
		amount    string
	}{
		{"expense.created", "10"},
		{"expense.updated", "99"},
		{"expense.deleted", "99"},
	} {
		body := suite.expenseEventBody(step.eventType, expenseID, categoryID, step.amount)
		recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/events/expenses", body)
		test.AssertHTTPStatus(suite.T(), http.StatusAccepted, recorder)
	}

	suite.bus.Wait()

	records, err := planning.RecordsForJar(plan.ID, jar.ID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), records, 0)
}

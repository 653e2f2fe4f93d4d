package planning

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sixjars/backend/internal/failure"
	"github.com/sixjars/backend/internal/models"
)

// Name and description of the plan the classic builder creates.
const (
	ClassicPlanName        = "My classic spending plan"
	ClassicPlanDescription = "My classic plan distribution: Necessities(55%), Long Term Savings(10%), " +
		"Education(10%), Play(10%), Financial(10%), Give(5%)."
)

// ClassicDistribution is the fixed six jar split of the classic plan. The
// percentages sum to exactly 100.
var ClassicDistribution = []JarCommand{
	{Name: "Necessities", Percentage: 55, Description: "Necessities spending: Rent, Food, Bills etc."},
	{Name: "Long Term Savings", Percentage: 10, Description: "Long Term Savings spending: Big Purchases, Vacations, Rainy Day Fund, Unexpected Medical Expenses."},
	{Name: "Education", Percentage: 10, Description: "Education spending: Coaching, Mentoring, Books, Courses, etc."},
	{Name: "Play", Percentage: 10, Description: "Play spending: Spoiling yourself & your family, Leisure expenses, Fun, etc."},
	{Name: "Financial", Percentage: 10, Description: "Financial spending: Stocks, Mutual Funds, Passive income Vehicles, Real Estate investing, Any other investments."},
	{Name: "Give", Percentage: 5, Description: "Give spending: Charitable, Donations."},
}

// ClassicPlanCommand carries the input for the classic plan builder.
type ClassicPlanCommand struct {
	AccountID    uuid.UUID       `json:"accountId"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// CreateClassicPlan creates one plan and its six classic jars. The whole
// sequence runs in a single transaction: a failure on any jar rolls back
// the plan as well.
func CreateClassicPlan(cmd ClassicPlanCommand) (models.Plan, error) {
	planCmd := PlanCommand{
		AccountID:    cmd.AccountID,
		Name:         ClassicPlanName,
		Description:  ClassicPlanDescription,
		Amount:       cmd.Amount,
		CurrencyCode: cmd.CurrencyCode,
	}

	if violations := planCmd.validate(); len(violations) > 0 {
		return models.Plan{}, failure.OfValidation(CreatePlanValidationMessage, violations)
	}

	var plan models.Plan
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		plan, err = createPlan(tx, planCmd)
		if err != nil {
			return err
		}

		for _, jarCmd := range ClassicDistribution {
			_, err = createJar(tx, plan.ID, jarCmd)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return models.Plan{}, err
	}

	log.Debug().Str("plan", plan.ID.String()).Msg("classic spending plan created with 6 jars")
	return plan, nil
}

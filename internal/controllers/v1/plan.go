package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sixjars/backend/internal/httputil"
	"github.com/sixjars/backend/internal/models"
	"github.com/sixjars/backend/internal/planning"
)

// PlanResponse wraps a single plan.
type PlanResponse struct {
	Data models.Plan `json:"data"`
}

// PlanListResponse wraps a list of plans.
type PlanListResponse struct {
	Data []models.Plan `json:"data"`
}

// RegisterPlanRoutes registers the routes for plans with
// the RouterGroup that is passed.
func RegisterPlanRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPlanList)
	r.GET("", GetPlans)
	r.POST("", CreatePlan)

	r.OPTIONS("/classic", OptionsClassicPlan)
	r.POST("/classic", CreateClassicPlan)

	r.OPTIONS("/:planId", OptionsPlanDetail)
	r.GET("/:planId", GetPlan)
	r.PUT("/:planId", UpdatePlan)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Router			/v1/plans [options]
func OptionsPlanList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Router			/v1/plans/classic [options]
func OptionsClassicPlan(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Failure		400	{object}	httpError
// @Param			planId	path	string	true	"ID of the plan"
// @Router			/v1/plans/{planId} [options]
func OptionsPlanDetail(c *gin.Context) {
	var uri PlanURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Message: err.Error()})
		return
	}

	httputil.OptionsGetPut(c)
}

// @Summary		Create plan
// @Description	Creates a new spending plan with an empty jar set
// @Tags			Plans
// @Produce		json
// @Success		201		{object}	PlanResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		422		{object}	httpError
// @Param			plan	body		planning.PlanCommand	true	"Plan"
// @Router			/v1/plans [post]
func CreatePlan(c *gin.Context) {
	var cmd planning.PlanCommand
	if err := httputil.BindData(c, &cmd); err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	plan, err := planning.CreatePlan(cmd)
	if err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	c.JSON(http.StatusCreated, PlanResponse{Data: plan})
}

// @Summary		Create classic plan
// @Description	Creates a plan with the classic six jar distribution (55/10/10/10/10/5)
// @Tags			Plans
// @Produce		json
// @Success		201		{object}	PlanResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		422		{object}	httpError
// @Param			plan	body		planning.ClassicPlanCommand	true	"Classic plan"
// @Router			/v1/plans/classic [post]
func CreateClassicPlan(c *gin.Context) {
	var cmd planning.ClassicPlanCommand
	if err := httputil.BindData(c, &cmd); err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	plan, err := planning.CreateClassicPlan(cmd)
	if err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	c.JSON(http.StatusCreated, PlanResponse{Data: plan})
}

// @Summary		Update plan
// @Description	Updates a plan. The target amounts of its jars are recomputed when the amount changes
// @Tags			Plans
// @Produce		json
// @Success		200		{object}	PlanResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		422		{object}	httpError
// @Param			planId	path		string					true	"ID of the plan"
// @Param			plan	body		planning.PlanCommand	true	"Plan"
// @Router			/v1/plans/{planId} [put]
func UpdatePlan(c *gin.Context) {
	var uri PlanURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Message: err.Error()})
		return
	}

	var cmd planning.PlanCommand
	if err := httputil.BindData(c, &cmd); err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	plan, err := planning.UpdatePlan(uuid.MustParse(uri.PlanID), cmd)
	if err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	c.JSON(http.StatusOK, PlanResponse{Data: plan})
}

// @Summary		Get plans
// @Description	Returns the plans of one account
// @Tags			Plans
// @Produce		json
// @Success		200			{object}	PlanListResponse
// @Failure		400			{object}	httpError
// @Param			accountId	query		string	true	"ID of the account"
// @Router			/v1/plans [get]
func GetPlans(c *gin.Context) {
	accountID, err := uuid.Parse(c.Query("accountId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Message: "the accountId query parameter must be a valid UUID"})
		return
	}

	plans, err := planning.PlansForAccount(accountID)
	if err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	c.JSON(http.StatusOK, PlanListResponse{Data: plans})
}

// @Summary		Get plan
// @Description	Returns a single plan by its ID
// @Tags			Plans
// @Produce		json
// @Success		200		{object}	PlanResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			planId	path		string	true	"ID of the plan"
// @Router			/v1/plans/{planId} [get]
func GetPlan(c *gin.Context) {
	var uri PlanURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Message: err.Error()})
		return
	}

	plan, err := planning.GetPlan(uuid.MustParse(uri.PlanID))
	if err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	c.JSON(http.StatusOK, PlanResponse{Data: plan})
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sixjars/backend/internal/httputil"
	"github.com/sixjars/backend/internal/models"
	"github.com/sixjars/backend/internal/planning"
)

// JarResponse wraps a single jar.
type JarResponse struct {
	Data models.Jar `json:"data"`
}

// JarListResponse wraps a list of jars.
type JarListResponse struct {
	Data []models.Jar `json:"data"`
}

// CategoryListResponse wraps the tracking rows of a jar.
type CategoryListResponse struct {
	Data []models.JarCategory `json:"data"`
}

// RecordListResponse wraps the expense records of a jar.
type RecordListResponse struct {
	Data []models.ExpenseRecord `json:"data"`
}

// RegisterJarRoutes registers the routes for jars with
// the RouterGroup that is passed.
func RegisterJarRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsJarList)
	r.GET("", GetJars)
	r.POST("", CreateJar)

	r.OPTIONS("/:jarId", OptionsJarDetail)
	r.GET("/:jarId", GetJar)

	r.OPTIONS("/:jarId/categories", OptionsJarCategories)
	r.GET("/:jarId/categories", GetJarCategories)
	r.PUT("/:jarId/categories", ModifyJarCategories)

	r.OPTIONS("/:jarId/expenses", OptionsJarExpenses)
	r.GET("/:jarId/expenses", GetJarExpenses)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Jars
// @Success		204
// @Router			/v1/plans/{planId}/jars [options]
func OptionsJarList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Jars
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/plans/{planId}/jars/{jarId} [options]
func OptionsJarDetail(c *gin.Context) {
	var uri JarURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Message: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Jars
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/plans/{planId}/jars/{jarId}/categories [options]
func OptionsJarCategories(c *gin.Context) {
	var uri JarURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Message: err.Error()})
		return
	}

	httputil.OptionsGetPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Jars
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/plans/{planId}/jars/{jarId}/expenses [options]
func OptionsJarExpenses(c *gin.Context) {
	var uri JarURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Message: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create jar
// @Description	Allocates a new jar on a plan. The sum of all jar percentages of the plan can not exceed 100
// @Tags			Jars
// @Produce		json
// @Success		201		{object}	JarResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		422		{object}	httpError
// @Param			planId	path		string				true	"ID of the plan"
// @Param			jar		body		planning.JarCommand	true	"Jar"
// @Router			/v1/plans/{planId}/jars [post]
func CreateJar(c *gin.Context) {
	var uri PlanURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Message: err.Error()})
		return
	}

	var cmd planning.JarCommand
	if err := httputil.BindData(c, &cmd); err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	jar, err := planning.CreateJar(uuid.MustParse(uri.PlanID), cmd)
	if err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	c.JSON(http.StatusCreated, JarResponse{Data: jar})
}

// @Summary		Get jars
// @Description	Returns all jars of one plan
// @Tags			Jars
// @Produce		json
// @Success		200		{object}	JarListResponse
// @Failure		400		{object}	httpError
// @Param			planId	path		string	true	"ID of the plan"
// @Router			/v1/plans/{planId}/jars [get]
func GetJars(c *gin.Context) {
	var uri PlanURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Message: err.Error()})
		return
	}

	jars, err := planning.JarsForPlan(uuid.MustParse(uri.PlanID))
	if err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	c.JSON(http.StatusOK, JarListResponse{Data: jars})
}

// @Summary		Get jar
// @Description	Returns a single jar scoped to its plan
// @Tags			Jars
// @Produce		json
// @Success		200		{object}	JarResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			planId	path		string	true	"ID of the plan"
// @Param			jarId	path		string	true	"ID of the jar"
// @Router			/v1/plans/{planId}/jars/{jarId} [get]
func GetJar(c *gin.Context) {
	var uri JarURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Message: err.Error()})
		return
	}

	jar, err := planning.GetJar(uuid.MustParse(uri.PlanID), uuid.MustParse(uri.JarID))
	if err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	c.JSON(http.StatusOK, JarResponse{Data: jar})
}

// @Summary		Modify tracked categories
// @Description	Adds categories to or removes categories from a jar in one batch
// @Tags			Jars
// @Produce		json
// @Success		200			{object}	CategoryListResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		422			{object}	httpError
// @Param			planId		path		string						true	"ID of the plan"
// @Param			jarId		path		string						true	"ID of the jar"
// @Param			categories	body		[]planning.CategoryChange	true	"Categories"
// @Router			/v1/plans/{planId}/jars/{jarId}/categories [put]
func ModifyJarCategories(c *gin.Context) {
	var uri JarURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Message: err.Error()})
		return
	}

	var changes []planning.CategoryChange
	if err := httputil.BindData(c, &changes); err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	created, err := planning.ModifyJarCategories(uuid.MustParse(uri.PlanID), uuid.MustParse(uri.JarID), changes)
	if err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: created})
}

// @Summary		Get tracked categories
// @Description	Returns the categories tracked by a jar
// @Tags			Jars
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			planId	path		string	true	"ID of the plan"
// @Param			jarId	path		string	true	"ID of the jar"
// @Router			/v1/plans/{planId}/jars/{jarId}/categories [get]
func GetJarCategories(c *gin.Context) {
	var uri JarURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Message: err.Error()})
		return
	}

	trackings, err := planning.CategoriesForJar(uuid.MustParse(uri.PlanID), uuid.MustParse(uri.JarID))
	if err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: trackings})
}

// @Summary		Get expense records
// @Description	Returns the expense records currently counted against a jar
// @Tags			Jars
// @Produce		json
// @Success		200		{object}	RecordListResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			planId	path		string	true	"ID of the plan"
// @Param			jarId	path		string	true	"ID of the jar"
// @Router			/v1/plans/{planId}/jars/{jarId}/expenses [get]
func GetJarExpenses(c *gin.Context) {
	var uri JarURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Message: err.Error()})
		return
	}

	records, err := planning.RecordsForJar(uuid.MustParse(uri.PlanID), uuid.MustParse(uri.JarID))
	if err != nil {
		s, body := status(err)
		c.JSON(s, body)
		return
	}

	c.JSON(http.StatusOK, RecordListResponse{Data: records})
}

package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sixjars/backend/internal/eventbus"
	"github.com/sixjars/backend/internal/expense"
	"github.com/sixjars/backend/internal/httputil"
)

// ExpenseEventRequest is the envelope the expense module posts to hand an
// expense lifecycle event to the projection.
type ExpenseEventRequest struct {
	Type string `json:"type" example:"expense.created"`
	expense.Event
}

var eventTypes = map[string]eventbus.Type{
	string(expense.Created): expense.Created,
	string(expense.Updated): expense.Updated,
	string(expense.Deleted): expense.Deleted,
}

// RegisterEventRoutes registers the expense event ingestion route with
// the RouterGroup that is passed.
func RegisterEventRoutes(r *gin.RouterGroup, bus *eventbus.Bus) {
	r.OPTIONS("/expenses", OptionsExpenseEvents)
	r.POST("/expenses", IngestExpenseEvent(bus))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Router			/v1/events/expenses [options]
func OptionsExpenseEvents(c *gin.Context) {
	httputil.OptionsPost(c)
}

// IngestExpenseEvent accepts an expense lifecycle event and enqueues it on
// the bus. The response only acknowledges the enqueue: the projection is
// updated asynchronously and a handler failure is not reported back.
//
// @Summary		Ingest expense event
// @Description	Accepts an expense lifecycle event from the expense module for asynchronous processing
// @Tags			Events
// @Produce		json
// @Success		202
// @Failure		400		{object}	httpError
// @Param			event	body		ExpenseEventRequest	true	"Event"
// @Router			/v1/events/expenses [post]
func IngestExpenseEvent(bus *eventbus.Bus) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request ExpenseEventRequest
		if err := httputil.BindData(c, &request); err != nil {
			s, body := status(err)
			c.JSON(s, body)
			return
		}

		eventType, ok := eventTypes[request.Type]
		if !ok {
			c.JSON(http.StatusBadRequest, httpError{Message: "the event type must be one of: expense.created, expense.updated, expense.deleted"})
			return
		}

		if request.ExpenseID == uuid.Nil || request.CategoryID == uuid.Nil {
			c.JSON(http.StatusBadRequest, httpError{Message: "expenseId and categoryId must be set"})
			return
		}

		if _, err := expense.ParsePaymentType(string(request.PaymentType)); err != nil {
			c.JSON(http.StatusBadRequest, httpError{Message: err.Error()})
			return
		}

		// The event outlives the request, so detach it from the request
		// context's cancellation.
		bus.Publish(context.WithoutCancel(c.Request.Context()), eventType, request.Event.Key(), request.Event)
		c.Status(http.StatusAccepted)
	}
}

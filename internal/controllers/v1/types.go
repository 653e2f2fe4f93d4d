package v1

import (
	"errors"
	"net/http"

	"github.com/sixjars/backend/internal/failure"
	"github.com/sixjars/backend/internal/httputil"
	"github.com/sixjars/backend/internal/models"
)

// PlanURI binds the planId path parameter.
type PlanURI struct {
	PlanID string `uri:"planId" binding:"required,uuid"`
}

// JarURI binds the planId and jarId path parameters.
type JarURI struct {
	PlanID string `uri:"planId" binding:"required,uuid"`
	JarID  string `uri:"jarId" binding:"required,uuid"`
}

// httpError is the body of all error responses.
type httpError struct {
	Message string                   `json:"message" example:"Spending plan was not found."`
	Errors  []failure.FieldViolation `json:"errors,omitempty"`
}

// status maps a failure to its HTTP status and response body.
func status(err error) (int, httpError) {
	var validation failure.Validation
	if errors.As(err, &validation) {
		return http.StatusUnprocessableEntity, httpError{
			Message: validation.Message,
			Errors:  validation.Violations,
		}
	}

	var notFound failure.NotFound
	if errors.As(err, &notFound) {
		return http.StatusNotFound, httpError{Message: notFound.Message}
	}

	var conflict failure.Conflict
	if errors.As(err, &conflict) {
		return http.StatusConflict, httpError{Message: conflict.Message}
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound, httpError{Message: err.Error()}
	}

	if errors.Is(err, httputil.ErrRequestBodyEmpty) || errors.Is(err, httputil.ErrRequestBodyInvalid) {
		return http.StatusBadRequest, httpError{Message: err.Error()}
	}

	return http.StatusInternalServerError, httpError{Message: models.ErrGeneral.Error()}
}

// Package failure defines the error taxonomy returned across the command
// boundary of the budgeting services.
//
// Services never panic on bad input. They return one of three concrete
// error types: Validation for malformed input or business-rule rejection,
// NotFound for missing resources, and Conflict for uniqueness violations.
// Validation accumulates every field violation instead of stopping at the
// first one.
package failure

import (
	"fmt"
	"strings"
)

// FieldViolation reports a single invalid field together with the value
// that was rejected.
type FieldViolation struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	RejectedValue any    `json:"rejectedValue,omitempty"`
}

// Validation is returned when a request fails schema or business-rule
// validation. It carries all field violations found in the request.
type Validation struct {
	Message    string           `json:"message"`
	Violations []FieldViolation `json:"errors"`
}

func (v Validation) Error() string {
	fields := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		fields = append(fields, violation.Field)
	}

	return fmt.Sprintf("%s (invalid fields: %s)", v.Message, strings.Join(fields, ", "))
}

// NotFound is returned when a resource referenced by ID does not exist.
type NotFound struct {
	Message string `json:"message"`
}

func (n NotFound) Error() string {
	return n.Message
}

// Conflict is returned when a request violates a uniqueness rule.
type Conflict struct {
	Message string `json:"message"`
}

func (c Conflict) Error() string {
	return c.Message
}

// OfValidation builds a Validation failure from the accumulated violations.
func OfValidation(message string, violations []FieldViolation) Validation {
	return Validation{Message: message, Violations: violations}
}

// OfNotFound builds a NotFound failure.
func OfNotFound(message string) NotFound {
	return NotFound{Message: message}
}

// OfConflict builds a Conflict failure.
func OfConflict(message string) Conflict {
	return Conflict{Message: message}
}

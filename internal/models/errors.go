package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Plan errors
	ErrPlanNameNotUnique     = errors.New("the plan name is already in use for this account")
	ErrPlanAmountNotPositive = errors.New("plan amounts must be larger than zero")
	ErrNameEmpty             = errors.New("names must not be empty")
	ErrNameTooLong           = errors.New("names must not be longer than 255 characters")
	ErrCurrencyInvalid       = errors.New("the currency code is not a valid ISO 4217 code")

	// Jar errors
	ErrJarNameNotUnique        = errors.New("the jar name is already in use for this plan")
	ErrJarPercentageOutOfRange = errors.New("jar percentages must be between 1 and 100")
	ErrJarTargetNotPositive    = errors.New("jar target amounts must be larger than zero")

	// Tracking errors
	ErrCategoryAlreadyTracked = errors.New("the category is already tracked by this jar")
)

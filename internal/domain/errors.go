package domain

import "errors"

// Domain errors
var (
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInternalError         = errors.New("internal error")
	ErrFinancialDataNotFound = errors.New("financial data not found")
	ErrUnknownDimension      = errors.New("unknown dimension")
	ErrIncompleteScores      = errors.New("scores must cover every dimension")
	ErrUnknownLifeEvent      = errors.New("unknown life event")
	ErrUnknownAction         = errors.New("unknown action type")
	ErrUnknownInsuranceType  = errors.New("unknown insurance type")
)

// Validation constants
const (
	MaxForecastMonths    = 120
	MaxInflationYears    = 100
	MaxDescriptionLength = 255
)

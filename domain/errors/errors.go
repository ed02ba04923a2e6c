package errors

import "errors"

var (
	// ErrDataSource is returned when a dataset is missing, unreadable or malformed
	ErrDataSource = errors.New("dataset could not be loaded")
	// ErrEmptyInput is returned by every aggregation invoked on zero records
	ErrEmptyInput = errors.New("no data matched this filter")
	// ErrSchemaMissingField is returned when an optional column is requested but the dataset does not have it
	ErrSchemaMissingField = errors.New("field not available for this dataset")

	ErrUnknownCity         = errors.New("unknown city")
	ErrInvalidFilter       = errors.New("invalid filter")
	ErrMissingColumn       = errors.New("missing required column")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDurationType = errors.New("invalid duration type")
	ErrInvalidBirthYear    = errors.New("invalid birth year")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
)

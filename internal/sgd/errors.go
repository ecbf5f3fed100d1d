package sgd

import "github.com/cockroachdb/errors"

// Sentinel errors. Returned errors wrap one of these with context; match
// them with errors.Is.
var (
	// ErrInvalidConfig reports an unknown or unsupported configuration value.
	ErrInvalidConfig = errors.New("sgd: invalid configuration")

	// ErrNotFitted reports use of a model before a successful Fit.
	ErrNotFitted = errors.New("sgd: model not fitted")

	// ErrDimensionMismatch reports inputs whose shapes disagree.
	ErrDimensionMismatch = errors.New("sgd: dimension mismatch")

	// ErrTooFewClasses reports training labels with fewer than two classes.
	ErrTooFewClasses = errors.New("sgd: classification requires at least two classes")

	// ErrEmptyInput reports a feature matrix without rows or columns.
	ErrEmptyInput = errors.New("sgd: empty input")
)

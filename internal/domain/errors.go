package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Probability errors
	ErrMsgDegenerateDistribution = "degenerate distribution"

	// Data availability errors
	ErrMsgMissingMapData         = "missing map data"
	ErrMsgDataNotLoaded          = "data not loaded"
	ErrMsgUnresolvedReference    = "unresolved reference"
	ErrMsgMeasurementUnavailable = "measurement unavailable"

	// Input errors
	ErrMsgUnknownLocation = "unknown location"
	ErrMsgInvalidInput    = "invalid input"
)

// Common domain errors. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details).
var (
	// ErrDegenerateDistribution means the weights of a distribution sum to zero.
	ErrDegenerateDistribution = errors.New(ErrMsgDegenerateDistribution)

	// ErrMissingMapData means a selected map lacks one of its raw tables.
	ErrMissingMapData = errors.New(ErrMsgMissingMapData)

	// ErrDataNotLoaded means a query needs a slot that has not loaded yet.
	ErrDataNotLoaded = errors.New(ErrMsgDataNotLoaded)

	// ErrUnresolvedReference means an entry points at an id that is not known.
	ErrUnresolvedReference = errors.New(ErrMsgUnresolvedReference)

	// ErrMeasurementUnavailable means a container or viewport size is not known yet.
	ErrMeasurementUnavailable = errors.New(ErrMsgMeasurementUnavailable)

	ErrUnknownLocation = errors.New(ErrMsgUnknownLocation)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)

package core

import "errors"

// Sentinel errors for DataArray construction and operations.
var (
	// ErrNoValues indicates a nil values buffer where data is required.
	ErrNoValues = errors.New("core: values buffer is required")

	// ErrDims indicates a dimension tuple inconsistent with the buffer rank
	// or the time axis rules.
	ErrDims = errors.New("core: dimension mismatch")

	// ErrTime indicates a time index whose length does not match the
	// leading axis.
	ErrTime = errors.New("core: time length does not match data")

	// ErrElevation indicates an elevation array on a non-layered geometry
	// or with an inconsistent shape.
	ErrElevation = errors.New("core: elevation requires a layered geometry")

	// ErrAxis indicates an axis name or position absent from dims.
	ErrAxis = errors.New("core: unknown axis")

	// ErrKey indicates a selection key that cannot be interpreted.
	ErrKey = errors.New("core: unsupported selection key")

	// ErrNotImplemented indicates a selection combination that is not
	// supported.
	ErrNotImplemented = errors.New("core: not yet implemented")

	// ErrMath indicates an elementwise operation that could not be applied.
	ErrMath = errors.New("core: math operation could not be applied")

	// ErrIncompatible indicates two arrays whose time, dims or geometry do
	// not line up.
	ErrIncompatible = errors.New("core: arrays are not compatible")

	// ErrWeights indicates weights whose length does not match the reduced
	// axis.
	ErrWeights = errors.New("core: weights length does not match axis")
)

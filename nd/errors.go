package nd

import "errors"

// Sentinel errors for nd buffer operations.
var (
	// ErrNoData indicates a nil or empty data buffer where values are required.
	ErrNoData = errors.New("nd: data buffer must be non-empty")

	// ErrShape indicates a shape whose element count does not match the buffer,
	// or a shape with a non-positive dimension size.
	ErrShape = errors.New("nd: shape does not match data length")

	// ErrAxis indicates an axis outside [0, ndim).
	ErrAxis = errors.New("nd: axis out of range")

	// ErrIndex indicates an element index outside the axis length.
	ErrIndex = errors.New("nd: index out of range")

	// ErrBroadcast indicates operand shapes that cannot be broadcast together.
	ErrBroadcast = errors.New("nd: operand shapes cannot be broadcast together")

	// ErrMask indicates a mask that is not boolean or does not match the
	// array shape.
	ErrMask = errors.New("nd: mask must be a Bool array of identical shape")

	// ErrQuantile indicates a quantile level outside [0, 1].
	ErrQuantile = errors.New("nd: quantile level must be in [0, 1]")
)

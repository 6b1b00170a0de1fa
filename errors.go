package curved

import "errors"

var (
	// ErrNegativeTolerance is returned when a linearization is requested
	// with a tolerance below zero.
	ErrNegativeTolerance = errors.New("tolerance must be zero or positive")

	ErrInvalidConfig = errors.New("invalid linearization config")

	// ErrControlPointCount is returned for circular strings whose number of
	// control points is not 3 or an odd number of at least 5.
	ErrControlPointCount = errors.New("invalid number of control points")

	// ErrOrdinateCount is returned when a flat ordinate slice does not
	// describe whole points.
	ErrOrdinateCount = errors.New("invalid number of ordinates")

	ErrNotClosed    = errors.New("start and end point do not match")
	ErrNotConnected = errors.New("segments are not connected")
	ErrEmpty        = errors.New("geometry is empty")
	ErrIndexRange   = errors.New("index out of range")
)

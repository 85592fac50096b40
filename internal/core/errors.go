package core

import "errors"

var (
	// ErrInvalidDimension reports a non-positive grid size.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrNotInitialized reports an engine operation issued before Initialize.
	ErrNotInitialized = errors.New("not initialized")
	// ErrOutOfBounds reports a coordinate outside the field extent.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInvalidThreshold reports a NaN or infinite classification threshold.
	ErrInvalidThreshold = errors.New("invalid threshold")
)

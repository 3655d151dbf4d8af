package ndarray

import "errors"

// Sentinel errors for ndarray operations, named and prefixed the way
// every other package in this module names its sentinels.
var (
	// ErrBadShape indicates a requested shape has a non-positive
	// dimension.
	ErrBadShape = errors.New("ndarray: shape dimensions must be > 0")
	// ErrRank indicates a multi-index's length does not match the
	// array's dimensionality.
	ErrRank = errors.New("ndarray: index rank mismatch")
	// ErrOutOfRange indicates an index component outside its
	// dimension's bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")
	// ErrLeadingDim indicates a weighting array's leading dimension did
	// not match the expected count (spec §3).
	ErrLeadingDim = errors.New("ndarray: leading dimension mismatch")
)

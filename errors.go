package neoncube

import "errors"

// Sentinel errors for the neoncube package.
var (
	// Construction errors
	ErrInvalidSize  = errors.New("neoncube: invalid cube size")
	ErrUnknownTheme = errors.New("neoncube: unknown theme")

	// Move errors
	ErrInvalidAxis     = errors.New("neoncube: invalid axis")
	ErrInvalidLayer    = errors.New("neoncube: invalid layer selection")
	ErrInvalidTurn     = errors.New("neoncube: only quarter turns are supported")
	ErrInvalidNotation = errors.New("neoncube: invalid move notation")

	// Numerical drift, recoverable by snapping
	ErrGeometryDrift = errors.New("neoncube: coordinate drifted off the lattice")
)

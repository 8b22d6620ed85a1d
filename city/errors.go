package city

import "errors"

var (
	// ErrNilCity indicates a nil *City was passed where a city is required.
	ErrNilCity = errors.New("city: nil city")
	// ErrIndexOutOfRange indicates a registry index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("city: index out of range")
	// ErrEmptyRegistry indicates an operation that needs at least one city.
	ErrEmptyRegistry = errors.New("city: registry is empty")
	// ErrRegistryFrozen indicates an Add after the registry was frozen.
	ErrRegistryFrozen = errors.New("city: registry is frozen")
	// ErrTSPLIBFormat indicates a malformed TSPLIB document.
	ErrTSPLIBFormat = errors.New("city: malformed TSPLIB input")
	// ErrTSPLIBDimension indicates DIMENSION disagrees with the coordinate count.
	ErrTSPLIBDimension = errors.New("city: TSPLIB dimension mismatch")
	// ErrUnsupportedWeightType indicates an EDGE_WEIGHT_TYPE without coordinates.
	ErrUnsupportedWeightType = errors.New("city: unsupported TSPLIB edge weight type")
)

package backend

import (
	"errors"
	"strconv"
)

// Errors.
var (
	// ErrNoBackendAvailable is returned when no rasterization backends are
	// registered.
	ErrNoBackendAvailable = errors.New("backend: no backend available")
)

// NotFoundError indicates a named backend is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "backend: backend not found: " + e.Name
}

// InitError indicates a backend failed its process-wide initialization.
type InitError struct {
	Name string
	Err  error
}

func (e *InitError) Error() string {
	return "backend: " + e.Name + ": initialization failed: " + e.Err.Error()
}

func (e *InitError) Unwrap() error { return e.Err }

// UnsupportedDepthError indicates a backend produced a bitmap whose color
// depth the format converter cannot handle. Only 32 bits per pixel is
// supported; palette and lower-depth glyph surfaces are rejected.
type UnsupportedDepthError struct {
	Depth int
}

func (e *UnsupportedDepthError) Error() string {
	return "backend: unsupported bitmap depth: " + strconv.Itoa(e.Depth) + " bits per pixel"
}

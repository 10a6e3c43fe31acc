// Package errs defines the sentinel errors returned by cadbin packages.
//
// Callers should match them with errors.Is; most are wrapped with context
// by the package that returns them.
package errs

import "errors"

// Revision errors.
var (
	ErrUnsupportedRevision = errors.New("unsupported format revision")
	ErrInvalidRevision     = errors.New("invalid format revision")
)

// Document model errors.
var (
	ErrDuplicateName = errors.New("duplicate entry name")
	ErrEmptyName     = errors.New("entry name must not be empty")
	ErrAlreadyOwned  = errors.New("object already has an owner")
	ErrNilObject     = errors.New("object must not be nil")
	ErrForeignObject = errors.New("object belongs to another document")
	ErrManagedEntity = errors.New("entity is managed by its block record")
)

// Handle resolution errors.
var (
	ErrNullHandle       = errors.New("handle 0 cannot be registered")
	ErrDuplicateHandle  = errors.New("handle registered twice")
	ErrUnresolvedHandle = errors.New("referenced handle was never registered")
)

// Codec errors.
var (
	// ErrValueOutOfRange marks a violated encoder precondition. Encoders
	// panic with an error wrapping it; the object writer turns the panic
	// into a failed write.
	ErrValueOutOfRange = errors.New("value out of range")
	ErrUnexpectedEOF   = errors.New("unexpected end of bit stream")
	ErrInvalidBitCode  = errors.New("invalid bit code")
)

// Output errors.
var (
	ErrSinkWrite          = errors.New("failed to write object section to sink")
	ErrWriterFinished     = errors.New("object writer already finished")
	ErrInvalidCompression = errors.New("invalid compression type")
)

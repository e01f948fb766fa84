package hashing

import "errors"

// Sentinel errors returned by hashing operations. Compare with [errors.Is].
var (
	// ErrInvalidHash is returned when an encoded hash cannot be parsed.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned by a constructor when a parameter falls
	// outside its allowed range.
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrDriverNotFound is returned by the Manager when the requested
	// driver has not been registered.
	ErrDriverNotFound = errors.New("hashing: driver not found")

	// ErrAlgorithmMismatch is returned when a hash was produced by a
	// different algorithm than the hasher it was handed to.
	ErrAlgorithmMismatch = errors.New("hashing: hash was produced by a different algorithm")
)

// Package hashing provides password hashing behind a small driver
// interface, modelled after Laravel's Hash facade.
//
// Two drivers ship with the package: [BcryptHasher] and [Argon2idHasher],
// both built on golang.org/x/crypto. A [Manager] registry dispatches to a
// configurable default driver and can verify hashes from several drivers
// side by side, which keeps algorithm migrations (bcrypt → argon2id)
// incremental:
//
//	m, _ := hashing.NewDefaultManager()
//	hash, _ := m.Make("secret")
//	ok, _ := m.CheckWithDetect("secret", hash)
package hashing

import "strings"

// DriverName identifies a hashing algorithm driver.
type DriverName string

const (
	// DriverBcrypt selects the bcrypt driver.
	DriverBcrypt DriverName = "bcrypt"
	// DriverArgon2id selects the Argon2id driver, the default for new systems.
	DriverArgon2id DriverName = "argon2id"
)

// Hasher is the interface satisfied by all password-hashing drivers.
// Implementations must be safe for concurrent use.
type Hasher interface {
	// Make hashes a plaintext password into a self-describing encoded
	// string. A fresh random salt is generated per call, so hashing the
	// same password twice yields different outputs.
	Make(password string) (string, error)

	// Check verifies password against an encoded hash in constant time.
	// Returns (false, nil) on a clean mismatch and an error only when the
	// hash is structurally invalid or produced by another algorithm.
	Check(password, hash string) (bool, error)

	// NeedsRehash reports whether hash was produced with parameters other
	// than the hasher's current configuration. Re-hash on next successful
	// login when true.
	NeedsRehash(hash string) (bool, error)

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// DetectDriver inspects an encoded hash and returns the driver that
// produced it, based on the format prefix. The second return value is
// false for unrecognised formats.
func DetectDriver(hash string) (DriverName, bool) {
	switch {
	case strings.HasPrefix(hash, "$argon2id$"):
		return DriverArgon2id, true
	case strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2y$"):
		return DriverBcrypt, true
	default:
		return "", false
	}
}

package hashing

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the default bcrypt work factor. Cost 12 keeps
// hashing in the low hundreds of milliseconds on current server hardware.
const DefaultBcryptCost = 12

// BcryptHasher hashes passwords with bcrypt. The 16-byte random salt is
// generated and stored inside the hash by the algorithm itself.
//
// Immutable after construction; safe for concurrent use.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a BcryptHasher. cost <= 0 selects
// [DefaultBcryptCost]; a cost outside bcrypt's valid range returns
// [ErrInvalidOption].
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d outside [%d, %d]",
			ErrInvalidOption, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Driver returns [DriverBcrypt].
func (h *BcryptHasher) Driver() DriverName { return DriverBcrypt }

// Cost returns the configured work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Make hashes password in Modular Crypt Format ("$2b$12$…").
// Note that bcrypt only considers the first 72 bytes of the password.
func (h *BcryptHasher) Make(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: %w", err)
	}
	return string(hash), nil
}

// Check verifies password against a bcrypt hash.
func (h *BcryptHasher) Check(password, hash string) (bool, error) {
	if d, ok := DetectDriver(hash); !ok || d != DriverBcrypt {
		return false, fmt.Errorf("%w: not a bcrypt hash", ErrAlgorithmMismatch)
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("hashing: bcrypt: %w", err)
	}
	return true, nil
}

// NeedsRehash reports whether the work factor stored in hash differs from
// the configured cost.
func (h *BcryptHasher) NeedsRehash(hash string) (bool, error) {
	if d, ok := DetectDriver(hash); !ok || d != DriverBcrypt {
		return false, fmt.Errorf("%w: not a bcrypt hash", ErrAlgorithmMismatch)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return cost != h.cost, nil
}

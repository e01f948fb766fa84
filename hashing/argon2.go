package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Options configures an [Argon2idHasher]. Every parameter is encoded
// into the produced PHC hash string, so changing options only affects new
// hashes; old ones stay verifiable.
type Argon2Options struct {
	// Memory is the memory cost in KiB. Must be at least 8×Threads.
	Memory uint32
	// Time is the number of passes over memory.
	Time uint32
	// Threads is the degree of parallelism.
	Threads uint8
	// KeyLen is the derived key length in bytes.
	KeyLen uint32
	// SaltLen is the random salt length in bytes, minimum 8.
	SaltLen uint32
}

// DefaultArgon2Options returns the recommended production parameters:
// 64 MiB memory, 3 iterations, 2 threads, 32-byte key, 16-byte salt.
func DefaultArgon2Options() Argon2Options {
	return Argon2Options{
		Memory:  64 * 1024,
		Time:    3,
		Threads: 2,
		KeyLen:  32,
		SaltLen: 16,
	}
}

func (o Argon2Options) validate() error {
	if o.Time < 1 {
		return fmt.Errorf("%w: argon2 time must be >= 1", ErrInvalidOption)
	}
	if o.Threads < 1 {
		return fmt.Errorf("%w: argon2 threads must be >= 1", ErrInvalidOption)
	}
	if o.Memory < 8*uint32(o.Threads) {
		return fmt.Errorf("%w: argon2 memory (%d KiB) below 8×threads", ErrInvalidOption, o.Memory)
	}
	if o.KeyLen < 4 {
		return fmt.Errorf("%w: argon2 key_len must be >= 4", ErrInvalidOption)
	}
	if o.SaltLen < 8 {
		return fmt.Errorf("%w: argon2 salt_len must be >= 8", ErrInvalidOption)
	}
	return nil
}

// Argon2idHasher hashes passwords with Argon2id, encoded in PHC string
// format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
//
// Immutable after construction; safe for concurrent use.
type Argon2idHasher struct {
	opts Argon2Options
}

// NewArgon2idHasher constructs an Argon2idHasher, validating the options.
func NewArgon2idHasher(opts Argon2Options) (*Argon2idHasher, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Argon2idHasher{opts: opts}, nil
}

// Driver returns [DriverArgon2id].
func (h *Argon2idHasher) Driver() DriverName { return DriverArgon2id }

// Make hashes password with a fresh random salt.
func (h *Argon2idHasher) Make(password string) (string, error) {
	salt := make([]byte, h.opts.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("hashing: argon2id: salt generation: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, h.opts.Time, h.opts.Memory, h.opts.Threads, h.opts.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.opts.Memory, h.opts.Time, h.opts.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Check verifies password against an argon2id PHC hash in constant time.
func (h *Argon2idHasher) Check(password, hash string) (bool, error) {
	p, err := parseArgon2id(hash)
	if err != nil {
		return false, err
	}
	key := argon2.IDKey([]byte(password), p.salt, p.time, p.memory, p.threads, uint32(len(p.key)))
	return subtle.ConstantTimeCompare(key, p.key) == 1, nil
}

// NeedsRehash reports whether the parameters stored in hash differ from the
// hasher's current options.
func (h *Argon2idHasher) NeedsRehash(hash string) (bool, error) {
	p, err := parseArgon2id(hash)
	if err != nil {
		return false, err
	}
	return p.memory != h.opts.Memory ||
		p.time != h.opts.Time ||
		p.threads != h.opts.Threads ||
		uint32(len(p.key)) != h.opts.KeyLen, nil
}

type argon2Hash struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

// parseArgon2id decodes the 6-segment PHC format produced by Make.
func parseArgon2id(encoded string) (*argon2Hash, error) {
	if d, ok := DetectDriver(encoded); !ok || d != DriverArgon2id {
		return nil, fmt.Errorf("%w: not an argon2id hash", ErrAlgorithmMismatch)
	}
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return nil, fmt.Errorf("%w: expected 5-segment PHC string", ErrInvalidHash)
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, fmt.Errorf("%w: bad version segment", ErrInvalidHash)
	}
	if version != argon2.Version {
		return nil, fmt.Errorf("%w: unsupported argon2 version %d", ErrInvalidHash, version)
	}
	var p argon2Hash
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, fmt.Errorf("%w: bad parameter segment", ErrInvalidHash)
	}
	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, fmt.Errorf("%w: bad salt encoding", ErrInvalidHash)
	}
	if p.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, fmt.Errorf("%w: bad key encoding", ErrInvalidHash)
	}
	return &p, nil
}

package hashing

import (
	"fmt"
	"sync"
)

// Manager is a goroutine-safe driver registry and dispatcher, the Go
// equivalent of Laravel's HashManager. Register named [Hasher]
// implementations, nominate a default, and route hashing calls through the
// Manager.
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Hasher
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered before hashing operations are invoked.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Hasher),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with bcrypt and argon2id registered
// using their recommended defaults; argon2id is the default driver.
func NewDefaultManager() (*Manager, error) {
	bc, err := NewBcryptHasher(DefaultBcryptCost)
	if err != nil {
		return nil, err
	}
	ar, err := NewArgon2idHasher(DefaultArgon2Options())
	if err != nil {
		return nil, err
	}
	m := NewManager(DriverArgon2id)
	m.RegisterDriver(DriverBcrypt, bc)
	m.RegisterDriver(DriverArgon2id, ar)
	return m, nil
}

// RegisterDriver adds or replaces a named hasher. Safe to call while other
// goroutines use the Manager.
func (m *Manager) RegisterDriver(name DriverName, h Hasher) {
	if name == "" || h == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
}

// Driver returns the hasher registered under name, or [ErrDriverNotFound].
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// SetDefaultDriver switches the default driver; it must be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the current default driver name.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()
	return m.Driver(def)
}

// Make hashes password with the default driver.
func (m *Manager) Make(password string) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Make(password)
}

// Check verifies password against hash with the default driver.
func (m *Manager) Check(password, hash string) (bool, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// CheckWithDetect verifies password by detecting which registered driver
// produced the hash. Useful while hashes from several algorithms coexist
// during a migration.
func (m *Manager) CheckWithDetect(password, hash string) (bool, error) {
	name, ok := DetectDriver(hash)
	if !ok {
		return false, ErrInvalidHash
	}
	h, err := m.Driver(name)
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// NeedsRehash reports whether hash should be re-hashed: it was produced by
// a driver other than the default, or by the default driver with different
// parameters.
func (m *Manager) NeedsRehash(hash string) (bool, error) {
	detected, ok := DetectDriver(hash)
	if !ok {
		return false, ErrInvalidHash
	}
	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()
	if detected != def {
		return true, nil
	}
	h, err := m.Driver(detected)
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(hash)
}

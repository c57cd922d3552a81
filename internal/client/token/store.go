// Package token persists the bearer credential that proves an authenticated
// session. At most one credential is held at a time; its presence is the sole
// signal used to decide whether the startup session probe is attempted.
package token

import "sync"

// Store abstracts credential persistence so the file-backed implementation
// can be swapped for an in-memory one in tests.
//
// Contract:
//   - Set overwrites any previous credential. No validation of token shape.
//   - Remove is idempotent; removing an absent credential is a no-op.
//   - Get reports absence through the bool and never fails.
type Store interface {
	Set(token string) error
	Remove() error
	Get() (string, bool)
}

// MemStore keeps the credential in memory. Used by tests and by sessions
// that should not outlive the process.
type MemStore struct {
	mu  sync.RWMutex
	tok string
	set bool
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = token
	m.set = true
	return nil
}

func (m *MemStore) Remove() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = ""
	m.set = false
	return nil
}

func (m *MemStore) Get() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return "", false
	}
	return m.tok, true
}

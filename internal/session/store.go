// Package session owns the two persisted token slots: the anonymous cart
// token and the admin bearer token. No other package reads or writes the
// state file directly.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/guestconcierge/storefront-client/internal/errors"
)

type Slot string

const (
	SlotCartToken  Slot = "cart_token"
	SlotAdminToken Slot = "admin_token"
)

// Store holds opaque token strings. Writes are synchronous and
// last-write-wins; no expiry is tracked client-side.
type Store interface {
	Get(slot Slot) (string, bool)
	Set(slot Slot, token string) error
	Clear(slot Slot) error
}

// FileStore persists tokens as a small JSON object, surviving process
// restarts the way localStorage survives page reloads.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(slot Slot) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.load()
	if err != nil {
		return "", false
	}

	token, ok := slots[string(slot)]

	return token, ok && token != ""
}

func (s *FileStore) Set(slot Slot, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.load()
	if err != nil {
		return err
	}

	slots[string(slot)] = token

	return s.save(slots)
}

func (s *FileStore) Clear(slot Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.load()
	if err != nil {
		return err
	}

	delete(slots, string(slot))

	return s.save(slots)
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}

		return nil, errors.SessionError("Failed to read session state").WithError(err)
	}

	slots := map[string]string{}
	if err := json.Unmarshal(data, &slots); err != nil {
		// Corrupt state file: treat as empty rather than wedging every
		// command that touches a token.
		return map[string]string{}, nil
	}

	return slots, nil
}

func (s *FileStore) save(slots map[string]string) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return errors.SessionError("Failed to encode session state").WithError(err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.SessionError("Failed to create state directory").WithError(err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.SessionError("Failed to write session state").WithError(err)
	}

	return nil
}

// MemStore keeps tokens in memory only. Used by tests and by callers that
// explicitly do not want persistence.
type MemStore struct {
	mu    sync.Mutex
	slots map[Slot]string
}

func NewMemStore() *MemStore {
	return &MemStore{slots: map[Slot]string{}}
}

func (s *MemStore) Get(slot Slot) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.slots[slot]

	return token, ok && token != ""
}

func (s *MemStore) Set(slot Slot, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[slot] = token

	return nil
}

func (s *MemStore) Clear(slot Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, slot)

	return nil
}

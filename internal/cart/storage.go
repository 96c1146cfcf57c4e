package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoState is returned by Load when nothing has been persisted yet.
var ErrNoState = errors.New("no persisted cart state")

// Storage persists the full cart state under a fixed key.
// Implementations must round-trip State exactly.
type Storage interface {
	Load() (*State, error)
	Save(State) error
}

// FileStorage keeps the cart in a single JSON document on disk, the
// closest analogue of the browser's localStorage entry.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() (*State, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoState
		}
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("failed to decode cart file: %w", err)
	}

	return &st, nil
}

func (f *FileStorage) Save(st State) error {
	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cart state: %w", err)
	}

	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file: %w", err)
	}

	return nil
}

// MemoryStorage is an in-memory Storage, mostly for tests.
type MemoryStorage struct {
	state *State
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() (*State, error) {
	if m.state == nil {
		return nil, ErrNoState
	}

	st := State{
		Items:       append([]Item(nil), m.state.Items...),
		TableNumber: m.state.TableNumber,
	}
	return &st, nil
}

func (m *MemoryStorage) Save(st State) error {
	cp := State{
		Items:       append([]Item(nil), st.Items...),
		TableNumber: st.TableNumber,
	}
	m.state = &cp
	return nil
}

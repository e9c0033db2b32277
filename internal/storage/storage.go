// Package storage persists the application state as a single JSON blob.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/diogo/openchat/internal/chat"
	"github.com/diogo/openchat/internal/config"
)

// State is the persisted snapshot: everything needed to restore the stores
// across restarts. The schema matches the in-memory model exactly.
type State struct {
	Conversations         []*chat.Conversation `json:"conversations"`
	CurrentConversationID string               `json:"current_conversation_id"`
	Settings              config.Settings      `json:"settings"`
}

// DefaultState is the all-default snapshot used when no blob exists yet
func DefaultState() State {
	return State{
		Conversations:         nil,
		CurrentConversationID: "",
		Settings:              config.DefaultSettings(),
	}
}

// Store is the persistence capability the core writes through
type Store interface {
	Load() (State, error)
	Save(State) error
}

// FileStore persists the state blob to a JSON file
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed store at the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the default state file location
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".openchat", "state.json"), nil
}

// DefaultStore creates a file store at the default location
func DefaultStore() (*FileStore, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewFileStore(path), nil
}

// Load reads the state blob. A missing file yields the all-default state.
func (f *FileStore) Load() (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultState(), nil
		}
		return State{}, fmt.Errorf("failed to read state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("failed to parse state: %w", err)
	}

	return state, nil
}

// Save rewrites the state blob. The directory is created on first write;
// the file carries the key, so it stays user-only.
func (f *FileStore) Save(state State) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	return nil
}

package config

import "sync"

// Store guards the settings singleton. Reads and writes are atomic with
// respect to each other: no reader observes a partially-applied update.
type Store struct {
	mu       sync.RWMutex
	settings Settings
	onChange func(Settings)
}

// NewStore creates a settings store from an initial snapshot. onChange is
// invoked with a copy of the new settings after every mutation (used to
// rewrite the persisted state). It may be nil.
func NewStore(initial Settings, onChange func(Settings)) *Store {
	initial.HistoryLength = clampHistoryLength(initial.HistoryLength)
	if initial.Model == "" {
		initial.Model = DefaultSettings().Model
	}
	return &Store{
		settings: initial,
		onChange: onChange,
	}
}

// Update merges the non-nil fields of the patch into the current settings.
// Credential validation is the caller's job; the only normalization done
// here is clamping HistoryLength into its documented bounds.
func (s *Store) Update(p Patch) Settings {
	s.mu.Lock()
	if p.APIKey != nil {
		s.settings.APIKey = *p.APIKey
	}
	if p.Model != nil {
		s.settings.Model = *p.Model
	}
	if p.HistoryLength != nil {
		s.settings.HistoryLength = clampHistoryLength(*p.HistoryLength)
	}
	if p.GoogleDriveEnabled != nil {
		s.settings.GoogleDriveEnabled = *p.GoogleDriveEnabled
	}
	if p.GoogleCalendarEnabled != nil {
		s.settings.GoogleCalendarEnabled = *p.GoogleCalendarEnabled
	}
	if p.GoogleMailEnabled != nil {
		s.settings.GoogleMailEnabled = *p.GoogleMailEnabled
	}
	if p.CopyToClipboard != nil {
		s.settings.CopyToClipboard = *p.CopyToClipboard
	}
	snap := s.settings
	s.mu.Unlock()

	s.notify(snap)
	return snap
}

// Clear resets every field to its documented default
func (s *Store) Clear() Settings {
	s.mu.Lock()
	s.settings = DefaultSettings()
	snap := s.settings
	s.mu.Unlock()

	s.notify(snap)
	return snap
}

// Snapshot returns a copy of the current settings
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// HistoryLength returns the current history window size
func (s *Store) HistoryLength() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.HistoryLength
}

// APIKey returns the configured credential (empty if unconfigured)
func (s *Store) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.APIKey
}

// Model returns the selected model identifier
func (s *Store) Model() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Model
}

// notify runs outside the lock so the persist hook can read other stores
func (s *Store) notify(snap Settings) {
	if s.onChange != nil {
		s.onChange(snap)
	}
}

// Pointer helpers for building patches.

// String returns a pointer to v for use in a Patch
func String(v string) *string { return &v }

// Int returns a pointer to v for use in a Patch
func Int(v int) *int { return &v }

// Bool returns a pointer to v for use in a Patch
func Bool(v bool) *bool { return &v }

// Package config holds the user settings and the store that guards them.
package config

// History window bounds. Values outside the range are clamped on write.
const (
	MinHistoryLength     = 1
	MaxHistoryLength     = 100
	DefaultHistoryLength = 10
)

// Settings represents the user configuration
type Settings struct {
	// APIKey is the OpenAI API key. Empty means unconfigured.
	APIKey string `json:"api_key"`
	// Model is the selected model identifier.
	Model string `json:"model"`
	// HistoryLength is the maximum number of trailing messages retained per
	// conversation and replayed as context on each request.
	HistoryLength int `json:"history_length"`
	// Integration toggles. Independent of each other.
	GoogleDriveEnabled    bool `json:"google_drive_enabled"`
	GoogleCalendarEnabled bool `json:"google_calendar_enabled"`
	GoogleMailEnabled     bool `json:"google_mail_enabled"`
	// CopyToClipboard copies the last assistant reply to the clipboard.
	CopyToClipboard bool `json:"copy_to_clipboard"`
}

// DefaultSettings returns the documented default configuration
func DefaultSettings() Settings {
	return Settings{
		APIKey:                "",
		Model:                 "gpt-4",
		HistoryLength:         DefaultHistoryLength,
		GoogleDriveEnabled:    false,
		GoogleCalendarEnabled: false,
		GoogleMailEnabled:     false,
		CopyToClipboard:       false,
	}
}

// Patch carries the fields of a partial settings update. Nil fields are left
// untouched by Store.Update.
type Patch struct {
	APIKey                *string
	Model                 *string
	HistoryLength         *int
	GoogleDriveEnabled    *bool
	GoogleCalendarEnabled *bool
	GoogleMailEnabled     *bool
	CopyToClipboard       *bool
}

func clampHistoryLength(n int) int {
	if n < MinHistoryLength {
		return MinHistoryLength
	}
	if n > MaxHistoryLength {
		return MaxHistoryLength
	}
	return n
}

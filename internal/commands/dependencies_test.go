package commands

import (
	"path/filepath"
	"testing"

	"github.com/diogo/openchat/internal/chat"
	"github.com/diogo/openchat/internal/config"
	"github.com/diogo/openchat/internal/storage"
)

func TestNewApp_FreshStateUsesDefaults(t *testing.T) {
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "state.json"))

	a, err := NewApp(store)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if a.Settings.Snapshot() != config.DefaultSettings() {
		t.Error("fresh app should start with default settings")
	}
	if a.Conversations.Len() != 0 {
		t.Error("fresh app should have no conversations")
	}
}

func TestNewApp_MutationsPersistAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	a, err := NewApp(storage.NewFileStore(path))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	a.Settings.Update(config.Patch{
		APIKey:        config.String("sk-test"),
		HistoryLength: config.Int(7),
	})
	conv := a.Conversations.StartNew()
	if err := a.Conversations.AddMessage(conv.ID, chat.NewUserMessage("hello again", nil, "")); err != nil {
		t.Fatalf("AddMessage failed: %v", err)
	}

	// Restart: a second app over the same file sees the same state.
	b, err := NewApp(storage.NewFileStore(path))
	if err != nil {
		t.Fatalf("second NewApp failed: %v", err)
	}

	if b.Settings.APIKey() != "sk-test" || b.Settings.HistoryLength() != 7 {
		t.Errorf("settings did not survive restart: %+v", b.Settings.Snapshot())
	}
	if b.Conversations.Len() != 1 {
		t.Fatalf("conversations did not survive restart: %d", b.Conversations.Len())
	}
	if b.Conversations.CurrentID() != conv.ID {
		t.Error("current reference did not survive restart")
	}

	got, ok := b.Conversations.Get(conv.ID)
	if !ok || len(got.Messages) != 1 || got.Messages[0].Content != "hello again" {
		t.Errorf("messages did not survive restart: %+v", got)
	}
	if got.Title != "hello again" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestNewApp_HistoryWindowReadFromSettings(t *testing.T) {
	a, err := NewApp(storage.NewFileStore(filepath.Join(t.TempDir(), "state.json")))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	a.Settings.Update(config.Patch{HistoryLength: config.Int(2)})
	conv := a.Conversations.StartNew()

	for _, c := range []string{"one", "two", "three"} {
		_ = a.Conversations.AddMessage(conv.ID, chat.NewUserMessage(c, nil, ""))
	}

	got, _ := a.Conversations.Get(conv.ID)
	if len(got.Messages) != 2 {
		t.Fatalf("window not enforced: %d messages", len(got.Messages))
	}
	if got.Messages[0].Content != "two" || got.Messages[1].Content != "three" {
		t.Error("wrong messages retained")
	}
}

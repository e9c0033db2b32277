package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/diogo/openchat/internal/chat"
	"github.com/diogo/openchat/internal/config"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantArg  string
		wantOK   bool
	}{
		{"/new", "new", "", true},
		{"/attach photo.png", "attach", "photo.png", true},
		{"/ATTACH  photo.png ", "attach", "photo.png", true},
		{"/url https://example.com/a.png", "url", "https://example.com/a.png", true},
		{"hello world", "", "", false},
		{"  /help", "help", "", true},
		{"not /a command", "", "", false},
	}

	for _, tt := range tests {
		got, ok := parseCommand(tt.input)
		if ok != tt.wantOK {
			t.Errorf("parseCommand(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			continue
		}
		if ok && (got.name != tt.wantName || got.arg != tt.wantArg) {
			t.Errorf("parseCommand(%q) = %+v, want {%s %s}", tt.input, got, tt.wantName, tt.wantArg)
		}
	}
}

type nopSender struct{}

func (nopSender) Send(ctx context.Context, text string, files []string, imageURL string) (chat.Message, error) {
	return chat.NewAssistantMessage("ok"), nil
}
func (nopSender) Loading() bool { return false }

func newTestModel() Model {
	settings := config.NewStore(config.DefaultSettings(), nil)
	store := chat.NewStore(nil, "", settings.HistoryLength, nil)
	return NewChatModel(nopSender{}, store, settings)
}

func TestRunCommand_AttachQueuesFile(t *testing.T) {
	m := newTestModel()

	next, _ := m.runCommand(command{name: "attach", arg: "cat.png"})
	m = next.(Model)

	if len(m.pendingFiles) != 1 || m.pendingFiles[0] != "cat.png" {
		t.Errorf("pendingFiles = %v", m.pendingFiles)
	}

	next, _ = m.runCommand(command{name: "url", arg: "https://example.com/x.png"})
	m = next.(Model)
	if m.pendingImageURL != "https://example.com/x.png" {
		t.Errorf("pendingImageURL = %s", m.pendingImageURL)
	}
}

func TestRunCommand_AttachWithoutArg(t *testing.T) {
	m := newTestModel()

	next, _ := m.runCommand(command{name: "attach"})
	m = next.(Model)

	if m.err == nil {
		t.Error("expected a usage error")
	}
}

func TestRunCommand_NewClearsPending(t *testing.T) {
	m := newTestModel()
	m.pendingFiles = []string{"a.png"}
	m.pendingImageURL = "https://example.com/b.png"

	next, _ := m.runCommand(command{name: "new"})
	m = next.(Model)

	if m.pendingFiles != nil || m.pendingImageURL != "" {
		t.Error("pending input should be cleared by /new")
	}
	if m.conversations.Len() != 1 {
		t.Error("a new conversation should have been started")
	}
}

func TestRunCommand_Unknown(t *testing.T) {
	m := newTestModel()

	next, _ := m.runCommand(command{name: "bogus"})
	m = next.(Model)

	if m.err == nil || !strings.Contains(m.err.Error(), "bogus") {
		t.Errorf("err = %v", m.err)
	}
}

func TestRenderMessage_Roles(t *testing.T) {
	user := renderMessage(chat.Message{
		Role:    chat.RoleUser,
		Content: "hi",
		Files:   []string{"cat.png"},
	}, 80)
	if !strings.Contains(user, "You") || !strings.Contains(user, "cat.png") {
		t.Errorf("user rendering missing pieces: %q", user)
	}

	system := renderMessage(chat.Message{
		Role:    chat.RoleSystem,
		Content: "Error: boom",
	}, 80)
	if !strings.Contains(system, "System") || !strings.Contains(system, "boom") {
		t.Errorf("system rendering missing pieces: %q", system)
	}

	assistant := renderMessage(chat.Message{
		Role:    chat.RoleAssistant,
		Content: "plain reply",
	}, 80)
	if !strings.Contains(assistant, "Assistant") {
		t.Errorf("assistant rendering missing label: %q", assistant)
	}
}

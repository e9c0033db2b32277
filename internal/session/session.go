// Package session drives the end-to-end send flow: assemble the request,
// call the API, and write the outcome back into the conversation store.
package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/diogo/openchat/internal/api"
	"github.com/diogo/openchat/internal/chat"
	"github.com/diogo/openchat/internal/config"
)

// Sentinel errors for send preconditions
var (
	// ErrNoAPIKey means the credential is unconfigured.
	ErrNoAPIKey = errors.New("no API key configured")
	// ErrSendInFlight means a send is already running. The loading flag
	// gates the input surface; this guard makes the core robust against
	// overlapping triggers anyway.
	ErrSendInFlight = errors.New("a send is already in flight")
)

// Completer is the remote completion operation the session consumes
type Completer interface {
	CreateCompletion(ctx context.Context, req openai.ChatCompletionRequest) (string, error)
}

// Session orchestrates sends against the current conversation
type Session struct {
	settings      *config.Store
	conversations *chat.Store

	// completerFor builds the remote client for the configured key.
	// Swappable for tests.
	completerFor func(apiKey string) Completer

	mu      sync.Mutex
	loading bool
}

// New creates a session backed by the real OpenAI client
func New(settings *config.Store, conversations *chat.Store) *Session {
	return &Session{
		settings:      settings,
		conversations: conversations,
		completerFor: func(apiKey string) Completer {
			return api.NewClient(apiKey)
		},
	}
}

// NewWithCompleter creates a session with a custom completer factory
func NewWithCompleter(settings *config.Store, conversations *chat.Store, completerFor func(apiKey string) Completer) *Session {
	return &Session{
		settings:      settings,
		conversations: conversations,
		completerFor:  completerFor,
	}
}

// Loading reports whether a send is in flight. The input surface is
// disabled while true.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) setLoading(v bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v && s.loading {
		return false
	}
	s.loading = v
	return true
}

// Send runs one user turn: it appends the user message to the current
// conversation (creating one when none is current), calls the completion
// API with the windowed prior history, and appends the result.
//
// Attachment read failures and precondition failures abort before any state
// mutation or network call and are returned as errors. A remote failure is
// recovered locally: a system-role message describing it is appended and
// Send returns that message with a nil error. The returned message is the
// one appended last (assistant reply or system error).
func (s *Session) Send(ctx context.Context, text string, attachmentPaths []string, imageURL string) (chat.Message, error) {
	if !s.setLoading(true) {
		return chat.Message{}, ErrSendInFlight
	}
	defer s.setLoading(false)

	settings := s.settings.Snapshot()
	if settings.APIKey == "" {
		return chat.Message{}, ErrNoAPIKey
	}

	// Read attachments before touching any state: a failed read must leave
	// no partial conversation behind.
	attachments, err := api.LoadAttachments(attachmentPaths)
	if err != nil {
		return chat.Message{}, err
	}
	images := api.FilterImages(attachments)

	// Prior history is captured before the new user message is appended;
	// the new input reaches the API as the multi-part entry instead.
	var history []chat.Message
	current := s.conversations.Current()
	if current != nil {
		history = current.Messages
	}

	names := make([]string, 0, len(attachmentPaths))
	for _, p := range attachmentPaths {
		names = append(names, filepath.Base(p))
	}
	if len(names) == 0 {
		names = nil
	}
	userMsg := chat.NewUserMessage(text, names, imageURL)

	var convID string
	if current == nil {
		convID = s.conversations.StartNew().ID
	} else {
		convID = current.ID
	}
	if err := s.conversations.AddMessage(convID, userMsg); err != nil {
		return chat.Message{}, fmt.Errorf("failed to record user message: %w", err)
	}

	req := api.BuildRequest(history, text, images, imageURL, settings.Model)

	log.Debug().
		Str("conversation", convID).
		Str("model", settings.Model).
		Int("history", len(history)).
		Int("images", len(images)).
		Msg("sending message")

	reply, err := s.completerFor(settings.APIKey).CreateCompletion(ctx, req)
	if err != nil {
		// Recovered locally: the failure becomes a visible system message.
		msg := chat.NewSystemMessage(fmt.Sprintf("Error: %v", err))
		if appendErr := s.conversations.AddMessage(convID, msg); appendErr != nil {
			return chat.Message{}, fmt.Errorf("failed to record error message: %w", appendErr)
		}
		return msg, nil
	}

	msg := chat.NewAssistantMessage(reply)
	if err := s.conversations.AddMessage(convID, msg); err != nil {
		return chat.Message{}, fmt.Errorf("failed to record assistant message: %w", err)
	}

	if settings.CopyToClipboard {
		if err := clipboard.WriteAll(reply); err != nil {
			log.Warn().Err(err).Msg("failed to copy reply to clipboard")
		}
	}

	return msg, nil
}

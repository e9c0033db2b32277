package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle is the placeholder for conversations with no user message yet
const DefaultTitle = "New Conversation"

// titleLimit is how many runes of the first user message become the title
const titleLimit = 30

// Conversation represents a titled, timestamped, bounded sequence of messages
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	Messages  []Message `json:"messages"`
}

// NewConversation creates an empty conversation with the placeholder title
func NewConversation() *Conversation {
	return &Conversation{
		ID:        uuid.New().String(),
		Title:     DefaultTitle,
		Timestamp: time.Now(),
		Messages:  []Message{},
	}
}

// Clone returns a deep copy, so callers can read without aliasing the
// store's internal state.
func (c *Conversation) Clone() *Conversation {
	cp := *c
	cp.Messages = make([]Message, len(c.Messages))
	copy(cp.Messages, c.Messages)
	for i, m := range cp.Messages {
		if m.Files != nil {
			files := make([]string, len(m.Files))
			copy(files, m.Files)
			cp.Messages[i].Files = files
		}
	}
	return &cp
}

// DeriveTitle produces a conversation title from the first user message
func DeriveTitle(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return DefaultTitle
	}

	runes := []rune(content)
	if len(runes) <= titleLimit {
		return content
	}
	return string(runes[:titleLimit]) + "..."
}

// Package chat owns the bounded collection of conversations and their messages.
package chat

import "time"

// Role tags one turn of a conversation. Set at creation, immutable.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message represents a single turn in a conversation. It is owned
// exclusively by its parent conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	// Files holds the names of attachments sent with the message, for
	// display. The attachment bytes themselves are never retained.
	Files []string `json:"files,omitempty"`
	// ImageURL is an external image locator attached to the message.
	ImageURL  string    `json:"image_url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserMessage builds a user-role message carrying attachment names
func NewUserMessage(content string, files []string, imageURL string) Message {
	return Message{
		Role:      RoleUser,
		Content:   content,
		Files:     files,
		ImageURL:  imageURL,
		Timestamp: time.Now(),
	}
}

// NewAssistantMessage builds an assistant-role message
func NewAssistantMessage(content string) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewSystemMessage builds a system-role message (used for visible errors)
func NewSystemMessage(content string) Message {
	return Message{
		Role:      RoleSystem,
		Content:   content,
		Timestamp: time.Now(),
	}
}

package api

import (
	openai "github.com/sashabaranov/go-openai"

	"github.com/diogo/openchat/internal/chat"
	"github.com/diogo/openchat/internal/models"
)

// BuildRequest converts windowed prior history plus the new user input into
// the completion request the API expects.
//
// The new entry carries an ordered multi-part content list: one text part
// (text may be empty), one inline-data image part per attachment, then one
// URL part for the external image reference. Historical messages replay
// role and text only; their attachments are not re-sent.
func BuildRequest(history []chat.Message, text string, images []Attachment, imageURL string, model string) openai.ChatCompletionRequest {
	parts := []openai.ChatMessagePart{
		{
			Type: openai.ChatMessagePartTypeText,
			Text: text,
		},
	}

	for _, img := range images {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    img.DataURL(),
				Detail: openai.ImageURLDetailAuto,
			},
		})
	}

	if imageURL != "" {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    imageURL,
				Detail: openai.ImageURLDetailAuto,
			},
		})
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	for _, m := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:         openai.ChatMessageRoleUser,
		MultiContent: parts,
	})

	return openai.ChatCompletionRequest{
		Model:     model,
		Messages:  msgs,
		MaxTokens: models.MaxOutput(model),
	}
}

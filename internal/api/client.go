// Package api talks to the OpenAI API: credential validation, request
// assembly, and chat completions.
package api

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	apierrors "github.com/diogo/openchat/internal/errors"
)

var errNoChoices = errors.New("response contained no choices")

// Client wraps the OpenAI SDK client for the two operations this
// application consumes: listing models and creating chat completions.
type Client struct {
	api *openai.Client
}

// NewClient creates a client authenticated with the given API key
func NewClient(apiKey string) *Client {
	return &Client{
		api: openai.NewClient(apiKey),
	}
}

// ListModels returns the raw model identifiers available to the credential
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	resp, err := c.api.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		ids = append(ids, m.ID)
	}

	log.Debug().Int("count", len(ids)).Msg("listed models")
	return ids, nil
}

// CreateCompletion sends an assembled chat completion request and returns
// the generated text. Failures are reported as RemoteError.
func (c *Client) CreateCompletion(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	log.Debug().
		Str("model", req.Model).
		Int("messages", len(req.Messages)).
		Int("max_tokens", req.MaxTokens).
		Msg("sending chat completion request")

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", apierrors.NewRemoteError(req.Model, err)
	}

	if len(resp.Choices) == 0 {
		return "", apierrors.NewRemoteError(req.Model, errNoChoices)
	}

	return resp.Choices[0].Message.Content, nil
}

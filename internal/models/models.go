// Package models contains the catalog of supported OpenAI models and their limits.
package models

import (
	"sort"
	"strings"
)

// SupportedPrefix is the model family this client can drive. Identifiers
// returned by the models endpoint that do not carry this prefix are ignored.
const SupportedPrefix = "gpt"

// Default limits applied to models with no explicit table entry.
const (
	DefaultContextLength = 8192
	DefaultMaxOutput     = 4000
)

// Info describes one usable model as presented in settings and used when
// sizing completion requests.
type Info struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ContextLength int    `json:"context_length"`
	SupportsFiles bool   `json:"supports_files"`
}

// contextLengths maps model ids to their context window. Models absent from
// the table fall back to DefaultContextLength. Kept as an explicit table so a
// new model is a one-line addition instead of a substring heuristic.
var contextLengths = map[string]int{
	"gpt-4-32k":           32768,
	"gpt-4-32k-0314":      32768,
	"gpt-4-32k-0613":      32768,
	"gpt-3.5-turbo-16k":   16384,
	"gpt-4-turbo":         128000,
	"gpt-4-turbo-preview": 128000,
	"gpt-4o":              128000,
	"gpt-4o-mini":         128000,
}

// maxOutputTokens maps model ids to the completion-token ceiling requested on
// each call. Absent models use DefaultMaxOutput.
var maxOutputTokens = map[string]int{
	"gpt-4-32k":      32000,
	"gpt-4-32k-0314": 32000,
	"gpt-4-32k-0613": 32000,
}

// visionModels lists models that accept image attachments.
var visionModels = map[string]bool{
	"gpt-4-vision-preview": true,
}

// DefaultModel is the model selected before the user has validated a key.
const DefaultModel = "gpt-4"

// IsSupported reports whether a raw model identifier belongs to the
// supported family.
func IsSupported(id string) bool {
	return strings.HasPrefix(id, SupportedPrefix)
}

// ContextLength returns the context window for a model id.
func ContextLength(id string) int {
	if n, ok := contextLengths[id]; ok {
		return n
	}
	return DefaultContextLength
}

// MaxOutput returns the completion-token ceiling for a model id.
func MaxOutput(id string) int {
	if n, ok := maxOutputTokens[id]; ok {
		return n
	}
	return DefaultMaxOutput
}

// SupportsFiles reports whether a model accepts image attachments.
func SupportsFiles(id string) bool {
	return visionModels[id]
}

// FromID builds the catalog entry for a single model identifier.
func FromID(id string) Info {
	return Info{
		ID:            id,
		Name:          id,
		Description:   "OpenAI Language Model",
		ContextLength: ContextLength(id),
		SupportsFiles: SupportsFiles(id),
	}
}

// Supported filters a raw identifier list down to the supported family and
// derives catalog entries, sorted by id for a stable settings display.
func Supported(ids []string) []Info {
	var infos []Info
	for _, id := range ids {
		if !IsSupported(id) {
			continue
		}
		infos = append(infos, FromID(id))
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})

	return infos
}

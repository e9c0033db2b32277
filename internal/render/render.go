// Package render provides markdown rendering utilities for terminal output.
package render

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Options configures the markdown renderer behavior.
type Options struct {
	// Width defines the maximum output width (default: 80)
	Width int

	// Style defines the theme: "dark", "light", or "auto"
	Style string
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Width: 80,
		Style: "dark",
	}
}

// WithWidth returns Options with the specified width.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns Options with the specified style.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}

// glamour.TermRenderer is not safe for concurrent Render calls, so
// renderers are pooled per option set instead of shared.
var pool = struct {
	mu    sync.Mutex
	byKey map[string]*sync.Pool
}{byKey: make(map[string]*sync.Pool)}

func poolFor(opts Options) *sync.Pool {
	key := fmt.Sprintf("%s:%d", opts.Style, opts.Width)

	pool.mu.Lock()
	defer pool.mu.Unlock()

	if p, ok := pool.byKey[key]; ok {
		return p
	}
	p := &sync.Pool{
		New: func() interface{} {
			r, err := newRenderer(opts)
			if err != nil {
				return nil
			}
			return r
		},
	}
	pool.byKey[key] = p
	return p
}

func newRenderer(opts Options) (*glamour.TermRenderer, error) {
	style := opts.Style
	if style == "" {
		style = DefaultOptions().Style
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultOptions().Width
	}

	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
}

// Markdown renders markdown content for terminal display.
func Markdown(content string, opts Options) (string, error) {
	p := poolFor(opts)

	r, _ := p.Get().(*glamour.TermRenderer)
	if r == nil {
		var err error
		r, err = newRenderer(opts)
		if err != nil {
			return "", fmt.Errorf("failed to create renderer: %w", err)
		}
	}
	defer p.Put(r)

	return r.Render(content)
}

// MarkdownWithWidth is a convenience function for rendering with a
// specific width and default options otherwise.
func MarkdownWithWidth(content string, width int) (string, error) {
	return Markdown(content, DefaultOptions().WithWidth(width))
}

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/openchat/internal/chat"
	"github.com/diogo/openchat/internal/config"
	"github.com/diogo/openchat/internal/render"
)

// Message types for the TUI
type (
	sentMsg struct {
		message chat.Message
	}
	errMsg struct {
		err error
	}
)

// Sender is the send operation the TUI drives. Satisfied by
// session.Session.
type Sender interface {
	Send(ctx context.Context, text string, attachmentPaths []string, imageURL string) (chat.Message, error)
	Loading() bool
}

// Model represents the chat TUI state
type Model struct {
	sender        Sender
	conversations *chat.Store
	settings      *config.Store

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	loading bool
	ready   bool
	err     error

	// Pending input collected via /attach and /url before the next send
	pendingFiles    []string
	pendingImageURL string

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model
func NewChatModel(sender Sender, conversations *chat.Store, settings *config.Store) Model {
	ta := textarea.New()
	ta.Placeholder = "Type your message (/help for commands)..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		sender:        sender,
		conversations: conversations,
		settings:      settings,
		textarea:      ta,
		spinner:       s,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// command is one parsed slash command
type command struct {
	name string
	arg  string
}

// parseCommand splits a "/name arg" input line. Returns ok=false for
// ordinary chat text.
func parseCommand(input string) (command, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return command{}, false
	}
	name, arg, _ := strings.Cut(input[1:], " ")
	return command{name: strings.ToLower(name), arg: strings.TrimSpace(arg)}, true
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		inputHeight := 5
		vpHeight := m.height - headerHeight - inputHeight
		if vpHeight < 5 {
			vpHeight = 5
		}
		contentWidth := m.width - 2

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			if m.loading || input == "" {
				break
			}

			if input == "exit" || input == "quit" {
				return m, tea.Quit
			}

			if c, ok := parseCommand(input); ok {
				m.textarea.Reset()
				return m.runCommand(c)
			}

			m.textarea.Reset()
			m.loading = true
			m.err = nil

			files := m.pendingFiles
			imageURL := m.pendingImageURL
			m.pendingFiles = nil
			m.pendingImageURL = ""

			return m, tea.Batch(
				m.send(input, files, imageURL),
				m.spinner.Tick,
			)
		}

	case sentMsg:
		m.loading = false
		m.refreshViewport()
		m.viewport.GotoBottom()

	case errMsg:
		m.loading = false
		m.err = msg.err
		m.refreshViewport()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if !m.loading {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// runCommand executes a slash command
func (m Model) runCommand(c command) (tea.Model, tea.Cmd) {
	switch c.name {
	case "new":
		m.conversations.StartNew()
		m.pendingFiles = nil
		m.pendingImageURL = ""
		m.err = nil
		m.refreshViewport()

	case "attach":
		if c.arg == "" {
			m.err = fmt.Errorf("usage: /attach <path>")
		} else {
			m.pendingFiles = append(m.pendingFiles, c.arg)
		}

	case "url":
		if c.arg == "" {
			m.err = fmt.Errorf("usage: /url <link>")
		} else {
			m.pendingImageURL = c.arg
		}

	case "help":
		m.err = fmt.Errorf("commands: /new, /attach <path>, /url <link>, exit")

	default:
		m.err = fmt.Errorf("unknown command: /%s", c.name)
	}

	return m, nil
}

// send dispatches the message through the orchestrator off the UI loop.
// The user message lands in the store during Send; the viewport refreshes
// when the command completes.
func (m Model) send(text string, files []string, imageURL string) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.sender.Send(context.Background(), text, files, imageURL)
		if err != nil {
			return errMsg{err: err}
		}
		return sentMsg{message: msg}
	}
}

// refreshViewport re-renders the current conversation transcript
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
}

// renderMessages renders the transcript of the current conversation
func (m Model) renderMessages() string {
	conv := m.conversations.Current()
	if conv == nil || len(conv.Messages) == 0 {
		return hintStyle.Render("No messages yet. Say something!")
	}

	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	for _, msg := range conv.Messages {
		b.WriteString(renderMessage(msg, width))
		b.WriteString("\n")
	}
	return b.String()
}

// renderMessage renders one transcript entry
func renderMessage(msg chat.Message, width int) string {
	var label string
	body := msg.Content

	switch msg.Role {
	case chat.RoleUser:
		label = userLabelStyle.Render("You")
		if len(msg.Files) > 0 {
			body += "\n" + attachmentStyle.Render("📎 "+strings.Join(msg.Files, ", "))
		}
		if msg.ImageURL != "" {
			body += "\n" + attachmentStyle.Render("🔗 "+msg.ImageURL)
		}
	case chat.RoleAssistant:
		label = assistantLabelStyle.Render("Assistant")
		if rendered, err := render.MarkdownWithWidth(msg.Content, width); err == nil {
			body = strings.TrimRight(rendered, "\n")
		}
	case chat.RoleSystem:
		label = systemLabelStyle.Render("System")
		body = errorStyle.Render(msg.Content)
	}

	return label + "\n" + body + "\n"
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string

	title := titleStyle.Render("✦ openchat")
	sub := subtitleStyle.Render(m.settings.Model())
	if conv := m.conversations.Current(); conv != nil {
		sub += subtitleStyle.Render("  •  " + conv.Title)
	}
	sections = append(sections, title+"  "+sub)

	sections = append(sections, m.viewport.View())

	var status string
	switch {
	case m.loading:
		status = m.spinner.View() + loadingStyle.Render(" thinking...")
	case m.err != nil:
		status = errorStyle.Render(m.err.Error())
	default:
		status = m.pendingStatus()
	}

	input := inputBoxStyle.Width(m.width - 4).Render(m.textarea.View())
	sections = append(sections, status, input)

	return strings.Join(sections, "\n")
}

// pendingStatus summarizes queued attachments for the status line
func (m Model) pendingStatus() string {
	var parts []string
	if n := len(m.pendingFiles); n > 0 {
		parts = append(parts, fmt.Sprintf("%d attachment(s) queued", n))
	}
	if m.pendingImageURL != "" {
		parts = append(parts, "image link queued")
	}
	if len(parts) == 0 {
		return hintStyle.Render("enter to send  •  /help for commands")
	}
	return attachmentStyle.Render(strings.Join(parts, "  •  "))
}

// Run starts the chat TUI
func Run(sender Sender, conversations *chat.Store, settings *config.Store) error {
	p := tea.NewProgram(
		NewChatModel(sender, conversations, settings),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

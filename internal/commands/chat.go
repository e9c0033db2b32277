package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/openchat/internal/tui"
)

// chatCmd starts the interactive chat TUI
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if app.Settings.APIKey() == "" {
			return fmt.Errorf("no API key configured; run 'openchat config set-key' first")
		}

		return tui.Run(app.Session, app.Conversations, app.Settings)
	},
}

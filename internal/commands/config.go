package commands

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/diogo/openchat/internal/config"
)

// configCmd groups the settings subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Set and validate the OpenAI API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("OpenAI API key: ")
		keyBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
		key := strings.TrimSpace(string(keyBytes))
		if key == "" {
			return fmt.Errorf("no key entered")
		}

		fmt.Println("Validating...")
		infos, err := app.Validator.Validate(cmd.Context(), key)
		if err != nil {
			return err
		}

		app.Settings.Update(config.Patch{APIKey: config.String(key)})

		fmt.Printf("Key is valid. %d usable models:\n", len(infos))
		for _, info := range infos {
			extra := ""
			if info.SupportsFiles {
				extra = ", supports files"
			}
			fmt.Printf("  %s (%d tokens%s)\n", info.Name, info.ContextLength, extra)
		}
		fmt.Printf("\nSelect one with: openchat config set model <id>\n")
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a settings field",
	Long: `Set a settings field. Fields:
  model           model identifier (e.g. gpt-4)
  history-length  messages kept per conversation (1-100)
  google-drive    true/false
  google-calendar true/false
  google-mail     true/false
  clipboard       true/false (copy replies to clipboard)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, value := args[0], args[1]

		var patch config.Patch
		switch field {
		case "model":
			patch.Model = config.String(value)
		case "history-length":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("history-length must be a number: %w", err)
			}
			patch.HistoryLength = config.Int(n)
		case "google-drive", "google-calendar", "google-mail", "clipboard":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s must be true or false: %w", field, err)
			}
			switch field {
			case "google-drive":
				patch.GoogleDriveEnabled = config.Bool(b)
			case "google-calendar":
				patch.GoogleCalendarEnabled = config.Bool(b)
			case "google-mail":
				patch.GoogleMailEnabled = config.Bool(b)
			case "clipboard":
				patch.CopyToClipboard = config.Bool(b)
			}
		default:
			return fmt.Errorf("unknown field: %s", field)
		}

		app.Settings.Update(patch)
		return showConfig()
	},
}

var configClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset all settings to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		app.Settings.Clear()
		fmt.Println("Settings reset to defaults.")
		return showConfig()
	},
}

func showConfig() error {
	s := app.Settings.Snapshot()

	key := "(not set)"
	if s.APIKey != "" {
		key = maskKey(s.APIKey)
	}

	fmt.Println("Settings:")
	fmt.Printf("  api key:         %s\n", key)
	fmt.Printf("  model:           %s\n", s.Model)
	fmt.Printf("  history length:  %d\n", s.HistoryLength)
	fmt.Printf("  google drive:    %t\n", s.GoogleDriveEnabled)
	fmt.Printf("  google calendar: %t\n", s.GoogleCalendarEnabled)
	fmt.Printf("  google mail:     %t\n", s.GoogleMailEnabled)
	fmt.Printf("  clipboard:       %t\n", s.CopyToClipboard)
	return nil
}

// maskKey shows just enough of the key to recognize it
func maskKey(key string) string {
	if len(key) <= 8 {
		return "********"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func init() {
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configClearCmd)
}

// Package commands provides the CLI commands for openchat.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/diogo/openchat/internal/chat"
	"github.com/diogo/openchat/internal/render"
)

var (
	// Global flags
	verboseFlag  bool
	fileFlag     string
	attachFlag   []string
	imageURLFlag string
	outputFlag   string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"

	app *App
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "openchat [prompt]",
	Short: "Chat with OpenAI models from the terminal",
	Long: `openchat is a command-line client for the OpenAI chat API. It keeps a
small shelf of recent conversations on disk and replays a bounded window
of history with every request.

Examples:
  openchat chat                          Start interactive chat
  openchat config set-key                Configure and validate your API key
  openchat "What is Go?"                 Send a single query
  openchat -a diagram.png "Explain this" Attach an image
  cat prompt.md | openchat               Read prompt from stdin
  openchat "Hello" -o response.md        Save response to file`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verboseFlag {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}

		var err error
		app, err = DefaultApp()
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("openchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		prompt, err := readPrompt(args)
		if err != nil {
			return err
		}
		if prompt == "" {
			return cmd.Help()
		}

		return runQuery(cmd, prompt)
	},
}

// readPrompt resolves the one-shot prompt from -f, stdin, or the argument
func readPrompt(args []string) (string, error) {
	if fileFlag != "" {
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}
	return "", nil
}

// runQuery sends one prompt and prints the reply
func runQuery(cmd *cobra.Command, prompt string) error {
	msg, err := app.Session.Send(cmd.Context(), prompt, attachFlag, imageURLFlag)
	if err != nil {
		return err
	}

	if msg.Role == chat.RoleSystem {
		// Remote failure recovered into a visible message.
		fmt.Fprintln(os.Stderr, msg.Content)
		return nil
	}

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(msg.Content+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Printf("Response saved to %s\n", outputFlag)
		return nil
	}

	rendered, err := render.MarkdownWithWidth(msg.Content, 100)
	if err != nil {
		fmt.Println(msg.Content)
		return nil
	}
	fmt.Print(rendered)
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "read prompt from file")
	rootCmd.Flags().StringSliceVarP(&attachFlag, "attach", "a", nil, "attach image file(s)")
	rootCmd.Flags().StringVarP(&imageURLFlag, "image-url", "u", "", "attach an image by URL")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "save response to file")
	rootCmd.Flags().Bool("version", false, "print version information")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
}

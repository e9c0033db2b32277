package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// historyCmd groups the conversation-shelf subcommands
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and switch recent conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listConversations()
	},
}

var historySwitchCmd = &cobra.Command{
	Use:   "switch <number>",
	Short: "Make a listed conversation current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("expected a conversation number: %w", err)
		}

		list := app.Conversations.List()
		if n < 1 || n > len(list) {
			return fmt.Errorf("conversation %d not found (have %d)", n, len(list))
		}

		conv := list[n-1]
		app.Conversations.SetCurrent(conv.ID)
		fmt.Printf("Switched to: %s\n", conv.Title)
		return nil
	},
}

var historyNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a fresh conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		conv := app.Conversations.StartNew()
		fmt.Printf("Started conversation %s\n", conv.ID)
		return nil
	},
}

func listConversations() error {
	list := app.Conversations.List()
	if len(list) == 0 {
		fmt.Println("No conversations yet.")
		return nil
	}

	currentID := app.Conversations.CurrentID()
	for i, conv := range list {
		marker := " "
		if conv.ID == currentID {
			marker = "*"
		}
		fmt.Printf("%s %d. %s (%d messages, %s)\n",
			marker, i+1, conv.Title, len(conv.Messages),
			conv.Timestamp.Format("2006-01-02 15:04"))
	}
	return nil
}

func init() {
	historyCmd.AddCommand(historySwitchCmd)
	historyCmd.AddCommand(historyNewCmd)
}

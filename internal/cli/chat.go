package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/davidotu-spec/AegisFlow-AI/pkg/client"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the AegisFlow assistant",
	}

	cmd.AddCommand(newChatAskCmd())
	cmd.AddCommand(newChatHistoryCmd())
	cmd.AddCommand(newChatResetCmd())

	return cmd
}

func newChatAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message>",
		Short: "Send a message and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.Join(args, " ")
			if strings.TrimSpace(content) == "" {
				return fmt.Errorf("message must not be blank")
			}

			var spinner *pterm.SpinnerPrinter
			if getOutputFormat() == "table" {
				spinner, _ = pterm.DefaultSpinner.WithWriter(stdout).Start("Thinking...")
			}

			reply, err := apiClient.Chat().Send(context.Background(), content)
			if spinner != nil {
				_ = spinner.Stop()
			}
			if err != nil {
				return fmt.Errorf("failed to send message: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(reply)
			}
			printf("%s\n", reply.Content)
			return nil
		},
	}
}

func newChatHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := apiClient.Chat().History(context.Background())
			if err != nil {
				return fmt.Errorf("failed to load conversation: %w", err)
			}
			return printMessages(msgs)
		},
	}
}

func newChatResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Start a new conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := apiClient.Chat().Reset(context.Background())
			if err != nil {
				return fmt.Errorf("failed to reset conversation: %w", err)
			}
			return printMessages(msgs)
		},
	}
}

func printMessages(msgs []client.Message) error {
	if getOutputFormat() != "table" {
		return printOutput(msgs)
	}
	for _, m := range msgs {
		who := pterm.FgCyan.Sprint("AegisFlow")
		if m.Role == "user" {
			who = pterm.FgGreen.Sprint("You")
		}
		printf("[%s] %s: %s\n", m.Timestamp.Format("15:04"), who, m.Content)
	}
	return nil
}

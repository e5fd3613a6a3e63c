package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/cost-advisor/internal"
	"github.com/spf13/cobra"
)

var sendSessionID string

var replyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("135")).
	Bold(true)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send <message>",
	Short: "Send a message to the agent",
	Long: `Send a message in the active session (creating one if needed) and print
the agent's reply. When the reply contains report sections they are rendered
below it.

A failed agent call keeps your message in the session; rerun send to retry.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		cfg := loadConfig()
		apiKey := cfg.APIKey()
		if apiKey == "" {
			return fmt.Errorf("agent API key is not configured (set %s)", internal.APIKeyEnv)
		}

		agent, err := internal.NewAgentClient(apiKey, cfg.Agent.AgentID, cfg.Agent.UserID,
			internal.WithEndpoint(cfg.Agent.Endpoint))
		if err != nil {
			return fmt.Errorf("failed to create agent client: %w", err)
		}

		store, err := openStore(cfg, agent)
		if err != nil {
			return err
		}

		if sendSessionID != "" {
			if store.SelectSession(sendSessionID) == nil {
				return fmt.Errorf("session not found: %s", sendSessionID)
			}
		}

		var sess *internal.ChatSession
		sendErr := internal.ShowPending(cmd.Context(), "Waiting for the agent...", func() error {
			var innerErr error
			sess, innerErr = store.SendMessage(cmd.Context(), text)
			return innerErr
		})
		if sendErr != nil {
			// The user message is already persisted; the failure ends here.
			var agentErr *internal.AgentError
			if errors.As(sendErr, &agentErr) {
				internal.LogError("Agent call failed: %v", agentErr)
			} else {
				internal.LogError("Send failed: %v", sendErr)
			}
			fmt.Println("The agent did not reply. Your message was saved; try again in a moment.")
			return nil
		}

		reply := sess.LastAssistantMessage()
		if reply == nil {
			return nil
		}

		fmt.Println(replyStyle.Render("assistant:"))
		fmt.Println(reply.Content)

		if report := internal.ExtractReport(reply.Content); report.HasAnySection() {
			fmt.Println()
			renderReport(report)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVar(&sendSessionID, "session", "", "Send in a specific session instead of the active one")
}

package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/cost-advisor/internal"
	"github.com/spf13/cobra"
)

var showLimit int

var (
	// Styles for show command
	sessionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	sessionMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				MarginBottom(1)

	userMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 1)

	assistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	messageContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show messages for a conversation",
	Long:  `Display the messages of a conversation. Without an id the active session is shown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(loadConfig(), nil)
		if err != nil {
			return err
		}

		var sess *internal.ChatSession
		if len(args) == 1 {
			sess = store.Find(args[0])
			if sess == nil {
				return fmt.Errorf("session not found: %s", args[0])
			}
		} else {
			sess = store.Active()
			if sess == nil {
				return fmt.Errorf("no active session (use `cost-advisor list` to see all sessions)")
			}
		}

		displaySession(sess)
		return nil
	},
}

func displaySession(sess *internal.ChatSession) {
	fmt.Println(sessionHeaderStyle.Render(sess.Title))
	fmt.Println(sessionMetaStyle.Render(fmt.Sprintf("%s · %d message(s) · modified %s",
		sess.ID, len(sess.Messages), formatRelativeTime(sess.LastModified))))

	messages := sess.Messages
	if showLimit > 0 && len(messages) > showLimit {
		messages = messages[len(messages)-showLimit:]
		fmt.Println(sessionMetaStyle.Render(fmt.Sprintf("(showing last %d)", showLimit)))
	}

	for _, msg := range messages {
		role := userMessageStyle.Render("user")
		if msg.Role == internal.RoleAssistant {
			role = assistantMessageStyle.Render("assistant")
		}
		stamp := timestampStyle.Render(msg.Timestamp.Format("2006-01-02 15:04"))
		fmt.Printf("%s %s\n", role, stamp)
		fmt.Println(messageContentStyle.Render(msg.Content))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVar(&showLimit, "limit", 0, "Only show the last N messages")
}

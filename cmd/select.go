package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// selectCmd represents the select command
var selectCmd = &cobra.Command{
	Use:   "select <session-id>",
	Short: "Make a conversation the active session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		store, err := openStore(loadConfig(), nil)
		if err != nil {
			return err
		}

		sess := store.SelectSession(id)
		if sess == nil {
			return fmt.Errorf("session not found: %s", id)
		}

		fmt.Printf("Active session is now %q (%s)\n", sess.Title, sess.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		store, err := openStore(loadConfig(), nil)
		if err != nil {
			return err
		}

		sess := store.Find(id)
		if sess == nil {
			return fmt.Errorf("session not found: %s", id)
		}

		store.DeleteSession(id)
		fmt.Printf("Deleted %q (%s)\n", sess.Title, id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

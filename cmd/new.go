package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new conversation",
	Long:  `Create a new empty conversation and make it the active session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(loadConfig(), nil)
		if err != nil {
			return err
		}

		sess := store.CreateSession()
		fmt.Printf("Started %q (%s)\n", sess.Title, sess.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}

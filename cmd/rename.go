package cmd

import (
	"fmt"

	"github.com/iksnae/cost-advisor/internal"
	"github.com/spf13/cobra"
)

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:   "rename <session-id> <title>",
	Short: "Rename a conversation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, title := args[0], args[1]
		if internal.IsBlank(title) {
			return fmt.Errorf("title must not be blank")
		}

		store, err := openStore(loadConfig(), nil)
		if err != nil {
			return err
		}

		if store.Find(id) == nil {
			return fmt.Errorf("session not found: %s", id)
		}

		store.RenameSession(id, title)
		fmt.Printf("Renamed %s to %q\n", id, title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

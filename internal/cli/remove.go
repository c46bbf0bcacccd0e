package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <profile>",
	Short: "Remove a profile",
	Long:  `Delete a stored profile. If it was the current profile, the pointer is cleared.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		fileStore, err := newStore()
		if err != nil {
			return err
		}

		store, err := fileStore.Load()
		if err != nil {
			return err
		}

		if !store.Remove(key) {
			PrintInfo(fmt.Sprintf("Profile '%s' not found", key))
			return nil
		}

		if err := fileStore.Save(store); err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Profile '%s' removed successfully", key))
		return nil
	},
}

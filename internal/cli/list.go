package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Long:  `Display all stored git identity profiles.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fileStore, err := newStore()
		if err != nil {
			return err
		}

		store, err := fileStore.Load()
		if err != nil {
			return err
		}

		if len(store.Profiles) == 0 {
			PrintInfo("No profiles configured")
			return nil
		}

		PrintInfo("Available profiles:")
		for _, key := range store.Keys() {
			p, _ := store.Get(key)
			current := ""
			if store.IsCurrent(key) {
				current = " (current)"
			}
			PrintInfo(fmt.Sprintf("  %s - %s <%s>%s", key, p.Name, p.Email, current))
			if p.SigningKey != "" {
				PrintInfo(fmt.Sprintf("    Signing key: %s", p.SigningKey))
			}
		}
		return nil
	},
}

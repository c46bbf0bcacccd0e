package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gswitch/internal/engine"
)

var switchCmd = &cobra.Command{
	Use:   "switch <profile>",
	Short: "Switch to a profile globally",
	Long: `Apply the named profile to the global git configuration and record it
as the current profile.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		eng, err := newEngine()
		if err != nil {
			return err
		}

		if err := eng.Switch(key); err != nil {
			if errors.Is(err, engine.ErrProfileNotFound) {
				PrintInfo(fmt.Sprintf("Profile '%s' not found", key))
				return nil
			}
			return err
		}

		PrintSuccess(fmt.Sprintf("Switched to profile '%s' globally", key))
		return nil
	},
}

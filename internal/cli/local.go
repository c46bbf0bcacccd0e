package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gswitch/internal/engine"
)

var localCmd = &cobra.Command{
	Use:   "local <profile>",
	Short: "Switch to a profile in the current repository only",
	Long: `Apply the named profile to the local git configuration of the current
repository. The stored current profile is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		eng, err := newEngine()
		if err != nil {
			return err
		}

		if err := eng.Local(key); err != nil {
			switch {
			case errors.Is(err, engine.ErrNotARepository):
				PrintInfo("Not in a git repository")
				return nil
			case errors.Is(err, engine.ErrProfileNotFound):
				PrintInfo(fmt.Sprintf("Profile '%s' not found", key))
				return nil
			}
			return err
		}

		PrintSuccess(fmt.Sprintf("Switched to profile '%s' locally", key))
		return nil
	},
}

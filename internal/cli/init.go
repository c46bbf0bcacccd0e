package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gswitch/internal/engine"
)

var initCmd = &cobra.Command{
	Use:   "init <profile>",
	Short: "Create a .gswitch file in the current directory",
	Long: `Write a .gswitch file naming the given profile, so that 'gsw auto' applies
it when working in or below this directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		eng, err := newEngine()
		if err != nil {
			return err
		}

		if _, err := eng.Init(key); err != nil {
			if errors.Is(err, engine.ErrProfileNotFound) {
				PrintInfo(fmt.Sprintf("Profile '%s' not found. Run 'gsw list' to see available profiles.", key))
				return nil
			}
			return err
		}

		PrintSuccess(fmt.Sprintf("Created .gswitch file with profile '%s'", key))
		return nil
	},
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gswitch/internal/engine"
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Auto-switch based on the nearest .gswitch file",
	Long: `Resolve the .gswitch file closest to the current directory (never looking
above the repository root) and apply the profile it names to the local git
configuration. Outside a repository, or without a .gswitch file, this is a
no-op.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		key, err := eng.Auto()
		if err != nil {
			if engine.IsBenign(err) {
				switch {
				case errors.Is(err, engine.ErrNotARepository):
					PrintInfo("Auto-switching only works within git repositories")
				case errors.Is(err, engine.ErrNoMarker):
					PrintInfo("No .gswitch file found in current git repository")
				case errors.Is(err, engine.ErrProfileNotFound):
					PrintWarning(fmt.Sprintf("Profile '%s' specified in .gswitch file not found", key))
				}
				return nil
			}
			return err
		}

		PrintSuccess(fmt.Sprintf("Auto-switched to profile '%s' locally", key))
		return nil
	},
}

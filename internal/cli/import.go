package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gswitch/internal/engine"
	"github.com/danieljhkim/gswitch/internal/gitcfg"
)

var importCmd = &cobra.Command{
	Use:   "import <profile>",
	Short: "Import the current git identity as a profile",
	Long:  `Read the git identity currently in effect and store it under the given key.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		eng, err := newEngine()
		if err != nil {
			return err
		}

		p, err := eng.Import(key)
		if err != nil {
			switch {
			case errors.Is(err, engine.ErrProfileExists):
				PrintInfo(fmt.Sprintf("Profile '%s' already exists. Use a different name or remove the existing profile first.", key))
				return nil
			case errors.Is(err, gitcfg.ErrIncomplete):
				PrintInfo(fmt.Sprintf("Failed to import current git configuration: %v", err))
				PrintInfo("Make sure you have git configured with at least user.name and user.email")
				return nil
			}
			return err
		}

		PrintSuccess(fmt.Sprintf("Imported current git identity as profile '%s':", key))
		PrintLabelValue("Name", p.Name)
		PrintLabelValue("Email", p.Email)
		if p.SigningKey != "" {
			PrintLabelValue("Signing key", p.SigningKey)
		}
		return nil
	},
}

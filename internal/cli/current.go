package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var currentFormat string

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current git identity",
	Long:  `Display the git identity currently in effect, as git itself resolves it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch currentFormat {
		case "full", "name", "email":
		default:
			PrintInfo(fmt.Sprintf("Invalid format: %s. Valid formats: full, name, email", currentFormat))
			return nil
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		p, err := eng.Current()
		if err != nil {
			// Stay silent in name/email format so shell substitutions
			// degrade to an empty string.
			if currentFormat == "full" {
				PrintInfo(fmt.Sprintf("Failed to get current git configuration: %v", err))
			}
			return nil
		}

		switch currentFormat {
		case "name":
			PrintInfo(p.Name)
		case "email":
			PrintInfo(p.Email)
		default:
			PrintInfo("Current git configuration:")
			PrintLabelValue("Name", p.Name)
			PrintLabelValue("Email", p.Email)
			if p.SigningKey != "" {
				PrintLabelValue("Signing key", p.SigningKey)
			}
		}
		return nil
	},
}

func init() {
	currentCmd.Flags().StringVar(&currentFormat, "format", "full", "Output format (full, name, email)")
}

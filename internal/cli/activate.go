package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gswitch/internal/shell"
)

var activateCmd = &cobra.Command{
	Use:   "activate <shell>",
	Short: "Print the shell integration script",
	Long: `Print a script that runs 'gsw auto' whenever the working directory
changes. Add it to your shell startup file, e.g.:

  eval "$(gsw activate bash)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := shell.Script(args[0])
		if err != nil {
			if errors.Is(err, shell.ErrUnsupported) {
				PrintInfo(fmt.Sprintf("Unsupported shell: %s. Supported shells: %s",
					args[0], strings.Join(shell.Supported, ", ")))
				return nil
			}
			return err
		}

		PrintInfo(script)
		return nil
	},
}

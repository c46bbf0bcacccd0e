package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gswitch/internal/marker"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the marker profile for shell prompts",
	Long: `Fast read-only check for embedding in shell prompts: looks for a .gswitch
file in the current directory only, prints its profile name, and signals
absence via the exit code. Never spawns git and never writes anything.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			os.Exit(1)
		}

		// Any error condition degrades to the same "no profile" signal as
		// a legitimate absence; prompt rendering must never fail hard.
		data, err := os.ReadFile(filepath.Join(cwd, marker.FileName))
		if err != nil {
			os.Exit(1)
		}

		key := strings.TrimSpace(string(data))
		if key == "" {
			os.Exit(1)
		}

		fmt.Printf(" %s", key)
	},
}

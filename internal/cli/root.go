// Package cli implements the gsw command-line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for gsw.
var rootCmd = &cobra.Command{
	Use:     "gsw",
	Version: "dev",
	Short:   "Switch git identities per profile and per directory",
	Long: `gsw manages named git identity profiles (name, email, signing key) and
applies them to git configuration globally, per repository, or automatically
based on a .gswitch file found within the current repository.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc colors group titles in the help output.
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	for _, group := range cmd.Groups() {
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")

		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && !c.Hidden {
				fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	hasUngrouped := false
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && !c.Hidden {
			if !hasUngrouped {
				help.WriteString(sectionTitleColor.Sprint("Additional Commands:"))
				help.WriteString("\n")
				hasUngrouped = true
			}
			fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
		}
	}
	if hasUngrouped {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "profile-management",
		Title: "Profile Management:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "switching",
		Title: "Switching:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "shell-integration",
		Title: "Shell Integration:",
	})

	// Profile Management commands
	addCmd.GroupID = "profile-management"
	listCmd.GroupID = "profile-management"
	removeCmd.GroupID = "profile-management"
	importCmd.GroupID = "profile-management"
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(importCmd)

	// Switching commands
	switchCmd.GroupID = "switching"
	localCmd.GroupID = "switching"
	autoCmd.GroupID = "switching"
	currentCmd.GroupID = "switching"
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(localCmd)
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(currentCmd)

	// Shell Integration commands
	initCmd.GroupID = "shell-integration"
	activateCmd.GroupID = "shell-integration"
	promptCmd.GroupID = "shell-integration"
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(promptCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

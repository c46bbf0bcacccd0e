package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gswitch/internal/profiles"
)

var (
	addUserName   string
	addEmail      string
	addSigningKey string
)

var addCmd = &cobra.Command{
	Use:   "add <profile>",
	Short: "Add a new git profile",
	Long:  `Store a new named git identity profile (name, email, optional signing key).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		fileStore, err := newStore()
		if err != nil {
			return err
		}

		store, err := fileStore.Load()
		if err != nil {
			return err
		}

		store.Add(key, profiles.Profile{
			Name:       addUserName,
			Email:      addEmail,
			SigningKey: addSigningKey,
		})

		if err := fileStore.Save(store); err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Profile '%s' added successfully", key))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addUserName, "user-name", "", "Git user name")
	addCmd.Flags().StringVar(&addEmail, "email", "", "Git user email")
	addCmd.Flags().StringVar(&addSigningKey, "signing-key", "", "Git signing key (optional)")
	_ = addCmd.MarkFlagRequired("user-name")
	_ = addCmd.MarkFlagRequired("email")
}

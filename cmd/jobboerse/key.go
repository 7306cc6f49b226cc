package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"jobboerse-cli/internal/secrets"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the API key stored in the OS keychain",
}

var keySetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store the X-API-Key value in the OS keychain",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := ""
		if len(args) == 1 {
			key = args[0]
		} else {
			var err error
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			if key, err = p.ask("Enter API key: "); err != nil {
				return err
			}
		}
		if err := secrets.SetAPIKey(key); err != nil {
			return fmt.Errorf("store api key: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "API key stored in keychain service %q\n", secrets.KeyringService)
		return nil
	},
}

var keyDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the stored API key; the configured key is used again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := secrets.DeleteAPIKey()
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Fprintln(cmd.OutOrStdout(), "No API key stored.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("delete api key: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API key removed from keychain.")
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keySetCmd, keyDeleteCmd)
	rootCmd.AddCommand(keyCmd)
}

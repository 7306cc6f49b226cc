package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jobboerse-cli/internal/config"
)

var initConfigForce bool

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if initConfigForce {
			if err := config.SaveAtomic(cfgPath, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote default config to %s\n", cfgPath)
			return nil
		}

		created, err := config.EnsureUserConfig(cfgPath)
		if err != nil {
			return err
		}
		if !created {
			fmt.Fprintf(out, "%s already exists; use --force to overwrite\n", cfgPath)
			return nil
		}
		fmt.Fprintf(out, "Wrote default config to %s\n", cfgPath)
		return nil
	},
}

func init() {
	initConfigCmd.Flags().BoolVar(&initConfigForce, "force", false, "Overwrite an existing file (previous copy kept as .bak)")
	rootCmd.AddCommand(initConfigCmd)
}

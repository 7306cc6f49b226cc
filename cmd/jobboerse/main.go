// Package main is the jobboerse command line: search the Bundesagentur für
// Arbeit job board, export the latest listings and show job details.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "jobboerse",
	Short:         "Search the Jobbörse job-search API",
	Long:          "jobboerse queries the Bundesagentur für Arbeit job-search API, lists and exports the most recently modified postings, and shows the detail document of the newest one.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(io.Discard)
		if verbose {
			log.SetOutput(cmd.ErrOrStderr())
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "jobboerse.yml", "Path to YAML config (missing file = defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests and diagnostics to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

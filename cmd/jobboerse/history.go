package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"jobboerse-cli/internal/export"
	"jobboerse-cli/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recorded searches, or the listings of one run",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistoryCmd,
}

var (
	historyDB    string
	historyLimit int
)

func init() {
	historyCmd.Flags().StringVar(&historyDB, "db", "", "SQLite history database (default from config)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of runs to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := pickString(historyDB, cfg.Store.Path)
	if path == "" {
		return errors.New("search history is disabled: set store.path in the config, JOBBOERSE_DB or --db")
	}

	db, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer db.Close()

	runID := ""
	if len(args) == 1 {
		runID = args[0]
	}
	return runHistory(cmd.Context(), db, runID, historyLimit, cmd.OutOrStdout())
}

func runHistory(ctx context.Context, db *store.DB, runID string, limit int, out io.Writer) error {
	if runID == "" {
		runs, err := store.ListRuns(ctx, db.Pool, limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(out, "No searches recorded yet.")
			return nil
		}
		return renderRuns(out, runs)
	}

	run, err := store.FindRun(ctx, db.Pool, runID)
	if err != nil {
		return err
	}
	jobs, err := store.RunListings(ctx, db.Pool, run.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Run %s: %q in %q, %d results, %s\n\n",
		run.ID, run.Keyword, run.Location, run.Results, run.CreatedAt.Local().Format(time.DateTime))
	_, err = export.RenderSummaries(out, jobs, len(jobs))
	return err
}

func renderRuns(w io.Writer, runs []store.Run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Run\tCreated\tJob Title\tLocation\tResults")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Keyword, r.Location, r.Results)
	}
	return tw.Flush()
}

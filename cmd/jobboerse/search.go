package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jobboerse-cli/internal/export"
	"jobboerse-cli/internal/jobsuche"
	"jobboerse-cli/internal/search"
	"jobboerse-cli/internal/store"
)

var searchCmd = &cobra.Command{
	Use:   "search [job title]",
	Short: "List and export the most recently modified postings",
	Long: "Search one page of postings for a job title (and optional location), order them newest first, " +
		"save every row to CSV and print the top rows. Without a job title argument the command prompts for it.",
	Args: cobra.MaximumNArgs(1),
	RunE: runSearchCmd,
}

var (
	searchLocation string
	searchSize     int
	searchPage     int
	searchTop      int
	searchCSV      string
	searchDB       string
)

func init() {
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "Work location (arbeitsort)")
	searchCmd.Flags().IntVar(&searchSize, "size", 0, "Page size (default from config)")
	searchCmd.Flags().IntVar(&searchPage, "page", 0, "Page number (default from config)")
	searchCmd.Flags().IntVarP(&searchTop, "top", "n", 0, "Rows to print (default from config)")
	searchCmd.Flags().StringVarP(&searchCSV, "out", "o", "", "CSV output path (default from config)")
	searchCmd.Flags().StringVar(&searchDB, "db", "", "Record the run in this SQLite history database")

	rootCmd.AddCommand(searchCmd)
}

// searchRun is one fully resolved search invocation.
type searchRun struct {
	Params  jobsuche.SearchParams
	Top     int
	CSVPath string
	DBPath  string // empty: no history
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	r := searchRun{
		Params: jobsuche.SearchParams{
			Location: searchLocation,
			Size:     pick(searchSize, cfg.Search.PageSize),
			Page:     pick(searchPage, cfg.Search.Page),
		},
		Top:     pick(searchTop, cfg.Search.Top),
		CSVPath: pickString(searchCSV, cfg.Export.CSVPath),
		DBPath:  pickString(searchDB, cfg.Store.Path),
	}

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		r.Params.Keyword = args[0]
	} else {
		p := newPrompter(cmd.InOrStdin(), out)
		if r.Params.Keyword, err = p.ask("Enter job title: "); err != nil {
			return err
		}
		if !cmd.Flags().Changed("location") {
			if r.Params.Location, err = p.ask("Enter location (optional): "); err != nil {
				return err
			}
		}
	}

	return runSearch(cmd.Context(), newService(cfg), r, out)
}

func runSearch(ctx context.Context, svc *search.Service, r searchRun, out io.Writer) error {
	res, err := svc.Latest(ctx, r.Params)
	if err != nil {
		return err
	}
	if res.Upstream != nil {
		fmt.Fprintf(out, "Error (Status %d): %s\n", res.Upstream.StatusCode, res.Upstream.Body)
	}
	if len(res.Jobs) == 0 {
		fmt.Fprintln(out, export.NoResults)
		return nil
	}

	if err := export.WriteCSV(r.CSVPath, res.Jobs); err != nil {
		return err
	}
	fmt.Fprintf(out, "Latest job listings saved to %s\n", r.CSVPath)

	if r.DBPath != "" {
		db, err := store.Open(r.DBPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer db.Close()

		run, err := store.SaveRun(ctx, db.Pool, r.Params.Keyword, r.Params.Location, res.Jobs)
		if err != nil {
			return fmt.Errorf("save history: %w", err)
		}
		fmt.Fprintf(out, "Search recorded as run %s\n", run.ID)
	}

	fmt.Fprintln(out, "\nLatest Job Listings:")
	_, err = export.RenderSummaries(out, res.Jobs, r.Top)
	return err
}

func pick(flag, def int) int {
	if flag > 0 {
		return flag
	}
	return def
}

func pickString(flag, def string) string {
	if flag != "" {
		return flag
	}
	return def
}

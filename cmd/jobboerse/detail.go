package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jobboerse-cli/internal/export"
	"jobboerse-cli/internal/jobsuche"
	"jobboerse-cli/internal/search"
)

var detailCmd = &cobra.Command{
	Use:   "detail [job title]",
	Short: "Show the detail document of the newest matching posting",
	Long: "Search for a job title (and optional location), pick the most recently modified posting " +
		"and print its detail document. Any non-200 answer from the API aborts the command.",
	Args: cobra.MaximumNArgs(1),
	RunE: runDetailCmd,
}

var (
	detailLocation string
	detailSize     int
)

func init() {
	detailCmd.Flags().StringVarP(&detailLocation, "location", "l", "", "Work location (arbeitsort)")
	detailCmd.Flags().IntVar(&detailSize, "size", 0, "How many postings to choose the newest from (default from config)")

	rootCmd.AddCommand(detailCmd)
}

func runDetailCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := jobsuche.SearchParams{
		Location: detailLocation,
		Size:     pick(detailSize, cfg.Search.DetailSize),
		Page:     1,
	}

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		p.Keyword = args[0]
	} else {
		pr := newPrompter(cmd.InOrStdin(), out)
		if p.Keyword, err = pr.ask("Enter job title keyword (in German, e.g., Data Scientist): "); err != nil {
			return err
		}
		if !cmd.Flags().Changed("location") {
			if p.Location, err = pr.ask("Enter location (optional): "); err != nil {
				return err
			}
		}
	}

	return runDetail(cmd.Context(), newService(cfg), p, out)
}

func runDetail(ctx context.Context, svc *search.Service, p jobsuche.SearchParams, out io.Writer) error {
	d, err := svc.LatestDetail(ctx, p)
	if errors.Is(err, jobsuche.ErrNoHashID) {
		fmt.Fprintln(out, "hashId missing from the response, cannot fetch detailed job info.")
		return nil
	}
	if err != nil {
		return err
	}
	if d == nil {
		fmt.Fprintln(out, export.NoResults)
		return nil
	}
	return export.RenderDetail(out, *d)
}

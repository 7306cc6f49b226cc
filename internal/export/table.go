package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"jobboerse-cli/internal/domain"
	"jobboerse-cli/internal/rank"
	"jobboerse-cli/internal/util"
)

const NoResults = "No matching jobs found."

// RenderSummaries prints the display columns of the first n jobs. It
// reports false, after printing NoResults, when there is nothing to show.
func RenderSummaries(w io.Writer, jobs []domain.JobSummary, n int) (bool, error) {
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(w, NoResults)
		return false, err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(domain.DisplayColumns, "\t"))
	for _, j := range rank.Top(jobs, n) {
		fmt.Fprintln(tw, strings.Join(cells(j.Values(domain.DisplayColumns)), "\t"))
	}
	return true, tw.Flush()
}

// RenderDetail prints a two-column Field/Detail table. Multi-line values
// (descriptions) continue on indented lines under the Detail column.
func RenderDetail(w io.Writer, d domain.JobDetail) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Field\tDetail")
	for _, f := range d.Fields() {
		lines := strings.Split(f.Value, "\n")
		fmt.Fprintf(tw, "%s\t%s\n", f.Name, util.Compose(strings.ReplaceAll(lines[0], "\t", " ")))
		for _, l := range lines[1:] {
			fmt.Fprintf(tw, "\t%s\n", util.Compose(strings.ReplaceAll(l, "\t", " ")))
		}
	}
	return tw.Flush()
}

var cellReplacer = strings.NewReplacer("\t", " ", "\n", " ")

// tabs would split a cell
func cells(vals []string) []string {
	for i, v := range vals {
		vals[i] = util.Compose(cellReplacer.Replace(v))
	}
	return vals
}

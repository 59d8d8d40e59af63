package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/renato0307/gitdu/internal/domain"
)

// WriteRuns writes a table of saved runs to w, newest first as given
func WriteRuns(w io.Writer, runs []domain.Run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tSTARTED\tCOMMITS\tOBJECTS\tPACK SIZE\tPACKED\tUNPACKED\tTOTAL")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%d\t%d\t%s\n",
			run.ID,
			humanize.Time(run.StartedAt),
			run.Commits,
			run.Objects,
			run.PackSizeMode,
			run.Totals.Packed,
			run.Totals.Unpacked,
			humanBytes(run.Totals.Total()))
	}

	return tw.Flush()
}

package console

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/renato0307/gitdu/internal/domain"
	"github.com/renato0307/gitdu/internal/logging"
	"github.com/renato0307/gitdu/internal/ports"
)

// PrinterOptions configures what a Printer reports besides per-commit lines
type PrinterOptions struct {
	Progress bool // Rewrite a progress line on the diagnostic stream
	Record   bool // Keep every per-commit size for Commits
	Top      int  // Rank the n largest commits for the summary, 0 disables
}

// Printer reports a measurement: one record per commit on out, progress
// and the summary on the diagnostic console.
type Printer struct {
	commits []domain.CommitSize
	console *logging.Console
	err     error
	opts    PrinterOptions
	out     io.Writer
	ranking *Ranking
}

// Verify interface compliance at compile time
var _ ports.MeasureObserver = (*Printer)(nil)

// NewPrinter creates a new Printer
func NewPrinter(out io.Writer, console *logging.Console, opts PrinterOptions) *Printer {
	p := &Printer{
		console: console,
		opts:    opts,
		out:     out,
	}
	if opts.Top > 0 {
		p.ranking = NewRanking(opts.Top)
	}
	return p
}

// OnCommitMeasured implements MeasureObserver.OnCommitMeasured
func (p *Printer) OnCommitMeasured(cs domain.CommitSize) {
	if p.err == nil {
		if err := WriteCommitLine(p.out, cs); err != nil {
			p.err = fmt.Errorf("failed to write commit line: %w", err)
		}
	}

	if p.ranking != nil {
		p.ranking.Add(cs)
	}
	if p.opts.Record {
		p.commits = append(p.commits, cs)
	}
}

// OnProgress implements MeasureObserver.OnProgress
func (p *Printer) OnProgress(stats domain.WalkStats) {
	if !p.opts.Progress {
		return
	}

	line := fmt.Sprintf("# %d/%d commits done (%d object(s) found)", stats.Commits, stats.TotalCommits, stats.Objects)
	p.console.Status(p.console.Styles.Progress.Render(line), len(line))
}

// Err returns the first error writing per-commit lines
func (p *Printer) Err() error {
	return p.err
}

// Commits returns the recorded per-commit sizes in enumeration order
func (p *Printer) Commits() []domain.CommitSize {
	return p.commits
}

// Finish clears the progress line and prints the grand totals, followed by
// the largest commits when ranking is enabled
func (p *Printer) Finish(run *domain.Run) {
	p.console.Clear()

	styles := p.console.Styles
	p.printTotal(styles.Packed.Render("# Total packed size:"), run.Totals.Packed)
	p.printTotal(styles.Unpacked.Render("# Total unpacked size:"), run.Totals.Unpacked)
	p.printTotal(styles.Total.Render("# Total size:"), run.Totals.Total())

	if p.ranking == nil {
		return
	}

	top := p.ranking.Top()
	p.console.Println(styles.Header.Render(fmt.Sprintf("# Largest %d commit(s):", len(top))))
	for i, cs := range top {
		p.console.Println(fmt.Sprintf("#  %2d. %s %d %s",
			i+1,
			cs.Commit.ID,
			cs.Size.Total(),
			styles.HumanSize.Render(fmt.Sprintf("(%s, packed %s, unpacked %s)",
				humanBytes(cs.Size.Total()),
				humanBytes(cs.Size.Packed),
				humanBytes(cs.Size.Unpacked)))))
	}
}

func (p *Printer) printTotal(label string, n int64) {
	p.console.Println(fmt.Sprintf("%s %d %s", label, n, p.console.Styles.HumanSize.Render("("+humanBytes(n)+")")))
}

func humanBytes(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return humanize.IBytes(uint64(n))
}

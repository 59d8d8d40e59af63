package cmd

import (
	"context"

	"github.com/renato0307/gitdu/internal/adapters/console"
	"github.com/renato0307/gitdu/internal/logging"
)

// HistoryCmd lists saved runs of a repository
type HistoryCmd struct {
	Path  string `arg:"" optional:"" default:"." help:"Path inside the repository"`
	Limit int    `help:"Maximum number of runs to list (0 = all)" default:"20"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	history, err := cli.Container.HistoryService()
	if err != nil {
		return err
	}

	runs, err := history.ListForPath(context.Background(), h.Path, h.Limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		logging.Logger.Info("No saved runs for " + h.Path)
		return nil
	}

	return console.WriteRuns(cli.stdout(), runs)
}

// HistoryShowCmd prints a saved run the way measure printed it
type HistoryShowCmd struct {
	RunID string `arg:"" help:"ID of the saved run"`
}

// Run executes the history-show command
func (h *HistoryShowCmd) Run(cli *CLI) error {
	history, err := cli.Container.HistoryService()
	if err != nil {
		return err
	}

	run, commits, err := history.Show(context.Background(), h.RunID)
	if err != nil {
		return err
	}

	out := cli.stdout()
	for _, cs := range commits {
		if err := console.WriteCommitLine(out, cs); err != nil {
			return err
		}
	}

	logging.Logger.Info("Run of "+run.RepoPath,
		"started_at", run.StartedAt,
		"pack_size", run.PackSizeMode)
	console.NewPrinter(out, logging.Stderr, console.PrinterOptions{}).Finish(run)
	return nil
}

package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/renato0307/gitdu/internal/adapters/console"
	"github.com/renato0307/gitdu/internal/config"
	"github.com/renato0307/gitdu/internal/domain"
	"github.com/renato0307/gitdu/internal/logging"
	"github.com/renato0307/gitdu/internal/services"
)

// MeasureCmd measures every commit of a repository
type MeasureCmd struct {
	Path       string `arg:"" optional:"" default:"." help:"Path inside the repository to measure"`
	NoProgress bool   `help:"Do not show the progress line" env:"GITDU_NO_PROGRESS"`
	PackSize   string `help:"Size counted for packed objects: uncompressed or stored (size in pack)" enum:"uncompressed,stored" default:"uncompressed" env:"GITDU_PACK_SIZE"`
	Save       bool   `help:"Save the run to the history database" env:"GITDU_SAVE"`
	Top        int    `help:"Show the N largest commits after the summary (0 = off)" default:"0" env:"GITDU_TOP"`
}

// applySettings fills flags left at their default from settings.json
func (m *MeasureCmd) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}

	if !m.NoProgress {
		if _, hasEnv := os.LookupEnv("GITDU_NO_PROGRESS"); !hasEnv {
			if settings.NoProgress != nil && *settings.NoProgress {
				m.NoProgress = true
			}
		}
	}

	if m.PackSize == string(domain.PackSizeUncompressed) {
		if _, hasEnv := os.LookupEnv("GITDU_PACK_SIZE"); !hasEnv {
			if settings.PackSize != "" {
				m.PackSize = settings.PackSize
			}
		}
	}

	if !m.Save {
		if _, hasEnv := os.LookupEnv("GITDU_SAVE"); !hasEnv {
			if settings.Save != nil && *settings.Save {
				m.Save = true
			}
		}
	}

	if m.Top == 0 {
		if _, hasEnv := os.LookupEnv("GITDU_TOP"); !hasEnv {
			if settings.Top != nil {
				m.Top = *settings.Top
			}
		}
	}
}

// Run executes the measure command
func (m *MeasureCmd) Run(cli *CLI) error {
	m.applySettings(cli.settings)

	mode, err := domain.ParsePackSizeMode(m.PackSize)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	printer := console.NewPrinter(cli.stdout(), logging.Stderr, console.PrinterOptions{
		Progress: !m.NoProgress && isatty.IsTerminal(os.Stderr.Fd()),
		Record:   m.Save,
		Top:      m.Top,
	})

	run, err := cli.Container.MeasureService.Measure(ctx, m.Path, services.MeasureOptions{PackSizeMode: mode}, printer)
	if err != nil {
		logging.Stderr.Clear()
		switch {
		case errors.Is(err, domain.ErrRepositoryNotFound):
			logging.Logger.Error("cannot detect repository root directory!", "path", m.Path)
		case errors.Is(err, domain.ErrNoCommits):
			logging.Logger.Error("cannot find any commits!")
		}
		return err
	}

	printer.Finish(run)
	if err := printer.Err(); err != nil {
		return err
	}

	if !m.Save {
		return nil
	}

	history, err := cli.Container.HistoryService()
	if err != nil {
		return err
	}
	if err := history.Save(ctx, run, printer.Commits()); err != nil {
		return err
	}

	logging.Logger.Info("Saved run " + run.ID)
	return nil
}

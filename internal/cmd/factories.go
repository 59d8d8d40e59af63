package cmd

import (
	adaptergit "github.com/renato0307/gitdu/internal/adapters/git"
	adapterstorage "github.com/renato0307/gitdu/internal/adapters/storage"
	"github.com/renato0307/gitdu/internal/ports"
	"github.com/renato0307/gitdu/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	MeasureService *services.MeasureService

	dbPath         string
	gitRepo        ports.GitRepository
	historyService *services.HistoryService

	// Internal - for cleanup only
	runRepo ports.RunRepository
}

// NewContainer creates a new Container with all dependencies wired.
// The run history database is only opened when first needed.
func NewContainer(dbPath string) *Container {
	gitRepo := adaptergit.NewCLIRepository()

	return &Container{
		MeasureService: services.NewMeasureService(gitRepo),
		dbPath:         dbPath,
		gitRepo:        gitRepo,
	}
}

// HistoryService returns the history service, opening the run database on first use
func (c *Container) HistoryService() (*services.HistoryService, error) {
	if c.historyService != nil {
		return c.historyService, nil
	}

	runRepo, err := adapterstorage.NewSQLiteRepository(c.dbPath)
	if err != nil {
		return nil, err
	}

	c.runRepo = runRepo
	c.historyService = services.NewHistoryService(c.gitRepo, runRepo)
	return c.historyService, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.runRepo != nil {
		return c.runRepo.Close()
	}
	return nil
}

// Package app implements the application layer for boot.
package app

import (
	"context"
	"io"
	"time"

	"go.trai.ch/boot/internal/core/domain"
	"go.trai.ch/boot/internal/core/ports"
	"go.trai.ch/boot/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// Options tunes the orchestrator created for each command.
type Options struct {
	Workers      int
	DrainTimeout time.Duration
}

// App represents the main application logic.
type App struct {
	loader        ports.ManifestLoader
	fingerprinter ports.Fingerprinter
	logger        ports.Logger
	opts          Options
}

// New creates a new App instance.
func New(loader ports.ManifestLoader, fingerprinter ports.Fingerprinter, log ports.Logger, opts Options) *App {
	return &App{
		loader:        loader,
		fingerprinter: fingerprinter,
		logger:        log,
		opts:          opts,
	}
}

func (a *App) newOrchestrator() (*orchestrator.Orchestrator, error) {
	o := orchestrator.New(
		orchestrator.WithLogger(a.logger),
		orchestrator.WithWorkers(a.opts.Workers),
		orchestrator.WithDrainTimeout(a.opts.DrainTimeout),
	)
	if err := o.RegisterInstance(orchestrator.LoggerID, a.logger); err != nil {
		return nil, err
	}
	return o, nil
}

func (a *App) load(path string) (*domain.Manifest, error) {
	m, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}
	return m, nil
}

// Plan resolves the manifest at path and writes the build order with its fingerprint to w.
// Nothing is constructed.
func (a *App) Plan(_ context.Context, w io.Writer, path string) error {
	m, err := a.load(path)
	if err != nil {
		return err
	}

	o, err := a.newOrchestrator()
	if err != nil {
		return err
	}
	order, err := o.Plan(m)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve build order")
	}

	return writePlan(w, order, a.fingerprinter.Fingerprint(order))
}

// Run initializes every component of the manifest at path and writes the lifecycle report to w.
// It returns the initialized orchestrator so callers can look up instances.
func (a *App) Run(ctx context.Context, w io.Writer, path string) (*orchestrator.Orchestrator, error) {
	m, err := a.load(path)
	if err != nil {
		return nil, err
	}

	o, err := a.newOrchestrator()
	if err != nil {
		return nil, err
	}
	if err := o.Initialize(ctx, m); err != nil {
		return nil, zerr.Wrap(err, "failed to initialize components")
	}

	if err := writeReport(w, o.Report()); err != nil {
		return nil, err
	}
	return o, nil
}

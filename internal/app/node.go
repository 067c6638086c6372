package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/boot/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/boot/internal/adapters/hasher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/boot/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/boot/internal/adapters/settings" //nolint:depguard // Wired in app layer
	"go.trai.ch/boot/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings settings.Settings
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			hasher.NodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[settings.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, fingerprinter, log, Options{
		Workers:      cfg.Workers,
		DrainTimeout: cfg.DrainTimeout,
	}), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[settings.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      a,
		Logger:   log,
		Settings: cfg,
	}, nil
}

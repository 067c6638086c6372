package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/boot/internal/adapters/catalog"
	"go.trai.ch/boot/internal/adapters/logger"
	"go.trai.ch/boot/internal/core/ports"
)

// NodeID is the unique identifier for the manifest loader Graft node.
const NodeID graft.ID = "adapter.manifest_loader"

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, catalog.NodeID},
		Run: func(ctx context.Context) (ports.ManifestLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			c, err := graft.Dep[*catalog.Catalog](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(c, log), nil
		},
	})
}

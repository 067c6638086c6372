package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/boot/internal/adapters/settings"
	"go.trai.ch/boot/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			cfg, err := graft.Dep[settings.Settings](ctx)
			if err != nil {
				return nil, err
			}
			level, err := ParseLevel(cfg.LogLevel)
			if err != nil {
				return nil, err
			}
			l := New()
			l.SetLevel(level)
			return l, nil
		},
	})
}

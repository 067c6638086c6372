package demo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/boot/internal/adapters/catalog"
)

func init() {
	graft.Register(graft.Node[*catalog.Catalog]{
		ID:        catalog.NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*catalog.Catalog, error) {
			c := catalog.New()
			if err := Register(c); err != nil {
				return nil, err
			}
			return c, nil
		},
	})
}

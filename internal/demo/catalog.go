package demo

import (
	"go.trai.ch/boot/internal/adapters/catalog"
	"go.trai.ch/boot/internal/core/domain"
	"go.trai.ch/boot/internal/core/ports"
	"go.trai.ch/boot/internal/engine/orchestrator"
)

// Identities of the demo components.
var (
	ConfigID  = domain.NewIdentity("demo.Config")
	StoreID   = domain.NewIdentity("demo.Store")
	CacheID   = domain.NewIdentity("demo.Cache")
	GreeterID = domain.NewIdentity("demo.Greeter")
	JanitorID = domain.NewIdentity("demo.Janitor")
)

// Register adds the demo components to c.
func Register(c *catalog.Catalog) error {
	err := catalog.Register(c, ConfigID.String(),
		catalog.Constructor("NewConfig", nil, func(domain.Args) (*Config, error) {
			return NewConfig(), nil
		}),
	)
	if err != nil {
		return err
	}

	err = catalog.Register(c, StoreID.String(),
		catalog.Constructor("NewStore", []domain.Identity{ConfigID}, func(args domain.Args) (*Store, error) {
			cfg, err := domain.Arg[*Config](args, 0)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg), nil
		}),
		catalog.Inject("logger", orchestrator.LoggerID, func(s *Store, l ports.Logger) { s.Logger = l }),
	)
	if err != nil {
		return err
	}

	err = catalog.Register(c, CacheID.String(),
		catalog.Constructor("NewCache", []domain.Identity{StoreID}, func(args domain.Args) (*Cache, error) {
			store, err := domain.Arg[*Store](args, 0)
			if err != nil {
				return nil, err
			}
			return NewCache(store), nil
		}),
	)
	if err != nil {
		return err
	}

	err = catalog.Register(c, GreeterID.String(),
		catalog.Constructor("NewGreeter", []domain.Identity{ConfigID, orchestrator.LoggerID},
			func(args domain.Args) (*Greeter, error) {
				cfg, err := domain.Arg[*Config](args, 0)
				if err != nil {
					return nil, err
				}
				logger, err := domain.Arg[ports.Logger](args, 1)
				if err != nil {
					return nil, err
				}
				return NewGreeter(cfg, logger), nil
			}),
		catalog.Inject("cache", CacheID, func(g *Greeter, c *Cache) { g.Cache = c }),
	)
	if err != nil {
		return err
	}

	return catalog.Register(c, JanitorID.String(),
		catalog.Constructor("NewJanitor", nil, func(domain.Args) (*Janitor, error) {
			return NewJanitor(), nil
		}),
		catalog.Inject("logger", orchestrator.LoggerID, func(j *Janitor, l ports.Logger) { j.Logger = l }),
	)
}

// Package demo provides a small set of components used by the boot command and its sample
// manifest.
package demo

import (
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/boot/internal/core/ports"
	"go.trai.ch/zerr"
)

// Config holds static values shared by the other components.
type Config struct {
	Greeting string
	Entries  map[string]string
}

// NewConfig creates the default Config.
func NewConfig() *Config {
	return &Config{
		Greeting: "hello",
		Entries:  map[string]string{"alpha": "1", "beta": "2", "gamma": "3"},
	}
}

// Store is an in-memory key value store.
type Store struct {
	Logger ports.Logger

	config *Config
	mu     sync.RWMutex
	data   map[string]string
	open   bool
}

// NewStore creates a Store seeded from cfg.
func NewStore(cfg *Config) *Store {
	return &Store{config: cfg, data: make(map[string]string)}
}

// Open loads the configured entries.
func (s *Store) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open {
		return zerr.New("store already open")
	}
	for k, v := range s.config.Entries {
		s.data[k] = v
	}
	s.open = true
	s.Logger.Info("store opened", "entries", len(s.data))
	return nil
}

// Get returns the value stored for key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Keys returns the number of stored keys.
func (s *Store) Keys() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Cache mirrors the store in front of readers.
type Cache struct {
	store  *Store
	warmed atomic.Bool
}

// NewCache creates a Cache in front of store.
func NewCache(store *Store) *Cache {
	return &Cache{store: store}
}

// Warm preloads the store. It runs asynchronously.
func (c *Cache) Warm() {
	_ = c.store.Keys()
	c.warmed.Store(true)
}

// Warmed reports whether Warm completed.
func (c *Cache) Warmed() bool {
	return c.warmed.Load()
}

// Greeter prints a greeting using the cache.
type Greeter struct {
	Cache *Cache

	config *Config
	logger ports.Logger
	greets atomic.Int32
}

// NewGreeter creates a Greeter.
func NewGreeter(cfg *Config, logger ports.Logger) *Greeter {
	return &Greeter{config: cfg, logger: logger}
}

// Greet logs the greeting.
func (g *Greeter) Greet() {
	g.greets.Add(1)
	g.logger.Info(g.config.Greeting, "keys", g.Cache.store.Keys())
}

// Greetings returns how often Greet ran.
func (g *Greeter) Greetings() int {
	return int(g.greets.Load())
}

// Janitor runs background cleanup.
type Janitor struct {
	Logger ports.Logger
	Delay  time.Duration

	swept atomic.Bool
}

// NewJanitor creates a Janitor.
func NewJanitor() *Janitor {
	return &Janitor{Delay: 10 * time.Millisecond}
}

// Sweep waits for Delay and reports completion. It runs asynchronously.
func (j *Janitor) Sweep() {
	time.Sleep(j.Delay)
	j.swept.Store(true)
	j.Logger.Debug("janitor swept")
}

// Swept reports whether Sweep completed.
func (j *Janitor) Swept() bool {
	return j.swept.Load()
}

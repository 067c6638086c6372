// Package config loads component manifests from YAML files.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"go.trai.ch/boot/internal/adapters/catalog"
	"go.trai.ch/boot/internal/core/domain"
	"go.trai.ch/boot/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ManifestLoader using a YAML file bound to a catalog.
type Loader struct {
	catalog *catalog.Catalog
	logger  ports.Logger
}

// NewLoader creates a Loader resolving component names against c.
func NewLoader(c *catalog.Catalog, logger ports.Logger) *Loader {
	return &Loader{catalog: c, logger: logger}
}

// Load reads the manifest file at path.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(errors.Join(zerr.Wrap(domain.ErrManifestReadFailed, "failed to read manifest"), err), "path", path)
	}

	m, err := l.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	l.logger.Debug("manifest loaded", "path", path, "components", m.Len())
	return m, nil
}

// Parse decodes a manifest document and binds every component to the catalog.
// All binding problems are reported together.
func (l *Loader) Parse(data []byte) (*domain.Manifest, error) {
	var bootfile Bootfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&bootfile); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(zerr.Wrap(domain.ErrManifestParseFailed, "failed to parse manifest"), err)
	}

	if bootfile.Version != SupportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedManifestVersion, "manifest version is not supported"),
			"version", bootfile.Version)
	}

	m := domain.NewManifest()
	var errs []error
	for _, dto := range bootfile.Components {
		d, err := l.bind(dto)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		m.Add(d)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

func (l *Loader) bind(dto ComponentDTO) (domain.ComponentDescriptor, error) {
	entry, err := l.catalog.Lookup(dto.ID)
	if err != nil {
		return domain.ComponentDescriptor{}, err
	}

	d := domain.ComponentDescriptor{ID: dto.ID}
	var errs []error

	for _, c := range dto.Constructors {
		ctor, err := entry.Constructor(c.Name, c.Params, c.Designated)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		d.Constructors = append(d.Constructors, ctor)
	}

	for _, f := range dto.Inject {
		field, err := entry.Field(f.Field, f.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		d.Fields = append(d.Fields, field)
	}

	for _, h := range dto.Hooks {
		hook, err := entry.Hook(h.Method, h.Priority, h.Async)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		d.Hooks = append(d.Hooks, hook)
	}

	return d, errors.Join(errs...)
}

var _ ports.ManifestLoader = (*Loader)(nil)

package config

import "go.trai.ch/boot/internal/core/domain"

// SupportedVersion is the only manifest schema version understood by the loader.
const SupportedVersion = "1"

// Bootfile represents the structure of the boot.yaml manifest file.
type Bootfile struct {
	Version    string         `yaml:"version"`
	Components []ComponentDTO `yaml:"components"`
}

// ComponentDTO represents a component declaration in the manifest.
type ComponentDTO struct {
	ID           domain.Identity  `yaml:"id"`
	Constructors []ConstructorDTO `yaml:"constructors"`
	Inject       []InjectDTO      `yaml:"inject"`
	Hooks        []HookDTO        `yaml:"hooks"`
}

// ConstructorDTO names a constructor bound in the catalog and the identities it takes.
type ConstructorDTO struct {
	Name       string            `yaml:"name"`
	Designated bool              `yaml:"designated"`
	Params     []domain.Identity `yaml:"params"`
}

// InjectDTO names a field bound in the catalog and the identity assigned to it.
type InjectDTO struct {
	Field string          `yaml:"field"`
	ID    domain.Identity `yaml:"id"`
}

// HookDTO names a method of the component run after injection.
type HookDTO struct {
	Method   string `yaml:"method"`
	Priority int    `yaml:"priority"`
	Async    bool   `yaml:"async"`
}

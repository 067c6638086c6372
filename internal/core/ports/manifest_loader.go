package ports

import "go.trai.ch/boot/internal/core/domain"

// ManifestLoader defines the interface for loading a component manifest.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest file at path and binds it to known components.
	Load(path string) (*domain.Manifest, error)
}

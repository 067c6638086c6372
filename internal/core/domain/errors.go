package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidComponent is returned when a component descriptor is malformed: no or several
	// designated constructors, an invalid hook, or a dependency on itself.
	ErrInvalidComponent = zerr.New("invalid component")

	// ErrUnresolvedDependency is returned when an identity is neither declared in the manifest
	// nor present in the instance registry.
	ErrUnresolvedDependency = zerr.New("unresolved dependency")

	// ErrCyclicDependency is returned when the dependency graph contains a cycle.
	ErrCyclicDependency = zerr.New("cyclic dependency")

	// ErrDuplicateDependency is returned when an identity is registered or declared twice.
	ErrDuplicateDependency = zerr.New("duplicate dependency")

	// ErrAlreadyInitialized is returned when the orchestrator lifecycle is misused after
	// initialization has started.
	ErrAlreadyInitialized = zerr.New("already initialized")

	// ErrNotInitialized is returned when instances are requested before initialization succeeded.
	ErrNotInitialized = zerr.New("not initialized")

	// ErrConstructionFailed is returned when a component constructor fails.
	ErrConstructionFailed = zerr.New("construction failed")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest file")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest file")

	// ErrUnsupportedManifestVersion is returned when the manifest declares an unknown schema version.
	ErrUnsupportedManifestVersion = zerr.New("unsupported manifest version")

	// ErrUnknownComponent is returned when the manifest names a component the catalog does not know.
	ErrUnknownComponent = zerr.New("unknown component")

	// ErrInvalidSettings is returned when process settings fail validation.
	ErrInvalidSettings = zerr.New("invalid settings")
)

// CyclePath returns the identities forming the cycle reported by err.
// It returns nil when err does not carry a cycle.
func CyclePath(err error) []Identity {
	for err != nil {
		var zErr *zerr.Error
		if !errors.As(err, &zErr) {
			return nil
		}
		if path, ok := zErr.Metadata()["cycle_path"].([]Identity); ok {
			return path
		}
		err = zErr.Unwrap()
	}
	return nil
}

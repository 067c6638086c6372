package ports

import "go.trai.ch/boot/internal/core/domain"

// Fingerprinter defines the interface for fingerprinting a build order.
//
//go:generate mockgen -destination=mocks/fingerprinter_mock.go -package=mocks -source=fingerprinter.go
type Fingerprinter interface {
	// Fingerprint returns a stable digest of the components, their dependencies and hooks,
	// in build order.
	Fingerprint(order domain.BuildOrder) string
}

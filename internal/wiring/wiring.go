// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/boot/internal/adapters/config"
	_ "go.trai.ch/boot/internal/adapters/hasher"
	_ "go.trai.ch/boot/internal/adapters/logger"
	_ "go.trai.ch/boot/internal/adapters/settings"
	// Register the component catalog.
	_ "go.trai.ch/boot/internal/demo"
	// Register app nodes.
	_ "go.trai.ch/boot/internal/app"
)

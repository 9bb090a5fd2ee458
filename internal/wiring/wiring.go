// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/condatools/condasnap/internal/adapters/conda"
	_ "github.com/condatools/condasnap/internal/adapters/logger"
	_ "github.com/condatools/condasnap/internal/adapters/manifest"
	// Register app nodes.
	_ "github.com/condatools/condasnap/internal/app"
)

package plotter_test

import (
	"github.com/katalvlaran/plotart/painting"
	"github.com/katalvlaran/plotart/plotter"
)

var (
	_ painting.PathExecutor = (*plotter.DryRun)(nil)
	_ painting.Pauser       = (*plotter.DryRun)(nil)
	_ painting.Pauser       = (*plotter.Prompt)(nil)
)

// Package plotter provides stand-ins for the pen plotter: a DryRun device
// that simulates pen travel and a Prompt that waits for the operator.
//
// DryRun implements painting.PathExecutor and painting.Pauser. It moves
// with the pen up to the start of every path, traces it with the pen down
// and keeps running totals of both distances, so a composition can be
// sized and timed before any paint touches paper.
//
// Prompt implements painting.Pauser on a terminal: it prints the reason
// and blocks until the operator presses Enter.
package plotter

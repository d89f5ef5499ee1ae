// Package config loads the plotart configuration: canvas geometry, the RNG
// seed, logging, and the composition Ranges.
//
// Files are TOML (config.toml) or YAML (config.yaml / config.yml), chosen by
// extension. Every file is decoded over Default(), so a partial file only
// overrides what it names. Unknown keys are rejected.
//
// ⚙️ Example (TOML):
//
//	seed = 42
//	log_level = "debug"
//
//	[canvas]
//	width = 420.0
//	height = 297.0
//	margin = 5.0
//
//	[ranges]
//	circles = { min = 1, max = 3 }
//	circle_radius = { min = 5.0, max = 30.0 }
package config

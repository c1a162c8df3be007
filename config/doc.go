// Package config loads layout settings from YAML or TOML files.
//
// The format follows the file extension (.yaml, .yml or .toml). Unset keys
// keep the layout defaults; a leading ~ in the path is expanded to the home
// directory.
//
//	base_radius: 1500
//	ring_size: 16
//	smooth: true
//	strategy: innermost
//	cycle_timeout: 30s
package config

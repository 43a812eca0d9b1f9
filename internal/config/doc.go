// Package config loads the project configuration file (specgraph.hcl).
//
// The file is HCL. Attribute expressions may read the process environment
// through the `env` object, for example `entry = env.SPECGRAPH_ENTRY`.
// Relative paths are resolved against the directory holding the file.
package config

// Package cmd provides the scicalc subcommands: an interactive REPL, batch
// evaluation of expressions, postfix conversion, and configuration file
// generation.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file. It is also the top-level key under which
	// flag values are stored in that file.
	ConfigIdentifier = "config"
)

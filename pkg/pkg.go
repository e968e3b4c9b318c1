// Package pkg holds the identity of the scicalc module: its name,
// description and version.
//
//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version returns the semantic version embedded at build time.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the canonical command and module identifier. It appears in
	// help text and default config and cache paths.
	Name = "scicalc"
	// Description is a short summary used in help output.
	Description = "Scientific calculator with degree trigonometry and named constants"
)

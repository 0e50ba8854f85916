// Package cli implements the graphloom command-line interface.
//
// The CLI is a thin shell over the library packages: every command that
// builds a canvas goes through a [pipeline.Runner], so the CLI and the HTTP
// server share settings resolution, caching and error handling.
//
// # Commands
//
//   - build: Canonicalize graph descriptions into ELK JSON (optionally laid out)
//   - render: Graphviz preview (dot, svg, png, pdf)
//   - inspect: Browse the built canvas tree
//   - settings, options: Work with settings files and the option registry
//   - profile: Resolve and store profile bundles
//   - serve: HTTP API
//   - cache, completion, version: Housekeeping
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// routes pipeline and cache events to the logger.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphloom/pkg/buildinfo"
	"github.com/matzehuels/graphloom/pkg/observability"
)

// EnableEventLogging routes pipeline and cache hook events to the CLI
// logger at debug level.
func (c *CLI) EnableEventLogging() {
	hooks := observability.NewLogHooks(c.Logger)
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
}

// versionCommand prints the build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildinfo.Get()
			fmt.Fprintf(c.out, "%s %s\n", appName, info.Version)
			fmt.Fprintf(c.out, "commit: %s\n", info.Commit)
			fmt.Fprintf(c.out, "built:  %s\n", info.Date)
			if info.GoVersion != "" {
				fmt.Fprintf(c.out, "go:     %s\n", info.GoVersion)
			}
			return nil
		},
	}
}

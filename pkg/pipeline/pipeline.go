// Package pipeline runs graphloom's build, layout and preview stages.
//
// This package is shared by the CLI and the HTTP server so that both
// resolve settings, cache elkjs results and emit observability events the
// same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: resolve settings (file, profile bundle, theme) and turn a graph
//     into a canonical ELK JSON canvas
//  2. Layout: optionally run elkjs over the canvas (cached by canvas hash)
//  3. Preview: optionally render a Graphviz preview (cached for SVG, PNG
//     and PDF)
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger, elkjs.NewRunner(elkjs.Options{}))
//	result, err := runner.Execute(ctx, g, pipeline.Options{
//	    Source:   "network.yaml",
//	    Settings: s,
//	    Layout:   true,
//	})
//	if err != nil {
//	    return err
//	}
//	io.ExportJSON("network.elk.json", result.Document())
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/graphloom/pkg/cache"
	"github.com/matzehuels/graphloom/pkg/canvas"
	"github.com/matzehuels/graphloom/pkg/profile"
	"github.com/matzehuels/graphloom/pkg/settings"
)

// Preview formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported preview formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// DefaultPNGScale is the zoom factor for PNG previews.
const DefaultPNGScale = 2.0

// Layouter positions a canvas. elkjs.Runner is the production implementation.
type Layouter interface {
	Layout(ctx context.Context, doc any) (map[string]any, error)
	Key() cache.LayoutKeyOpts
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one pipeline run.
type Options struct {
	// Source names the input in logs and hook events.
	Source string

	// Settings used for the build; nil means settings.Sample().
	Settings *settings.Settings

	// Profile is a profile bundle. When set it replaces Settings.
	Profile map[string]any

	// Theme metrics applied on top of the settings.
	Theme map[string]any

	// NoAutoCreate rejects edges that reference undeclared nodes.
	NoAutoCreate bool

	// Parallel builds sibling subgraphs concurrently.
	Parallel bool

	// Layout runs the Layouter after the build.
	Layout bool

	// Preview renders a Graphviz preview in this format when non-empty.
	Preview string

	// Detailed adds node types and icons to preview labels.
	Detailed bool

	// Refresh ignores cached layouts and previews (results are still stored).
	Refresh bool
}

// Validate checks option values that can be wrong independently of the input.
func (o *Options) Validate() error {
	if o.Preview != "" {
		if err := ValidateFormat(o.Preview); err != nil {
			return err
		}
	}
	if o.Profile != nil && o.Settings != nil {
		return fmt.Errorf("settings and profile are mutually exclusive")
	}
	return nil
}

// ValidateFormat checks that a preview format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png, pdf)", format)
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Source echoes Options.Source.
	Source string

	// Canvas is the built ELK JSON document.
	Canvas *canvas.Canvas

	// CanvasHash is the SHA-256 of the canvas JSON.
	CanvasHash string

	// Profile is set when the build used a profile bundle.
	Profile *profile.Resolved

	// Layout is the elkjs output when Options.Layout was set.
	Layout map[string]any

	// Preview holds the rendered preview when Options.Preview was set.
	Preview []byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Document returns the laid out graph when a layout ran, else the canvas.
func (r *Result) Document() any {
	if r.Layout != nil {
		return r.Layout
	}
	return r.Canvas
}

// Stats contains pipeline execution statistics.
type Stats struct {
	canvas.Stats
	BuildTime   time.Duration
	LayoutTime  time.Duration
	PreviewTime time.Duration
}

// CacheInfo tracks cache hits for each cached stage.
type CacheInfo struct {
	LayoutHit  bool
	PreviewHit bool
}

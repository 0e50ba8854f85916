// Package io reads and writes the documents graphloom works with: input
// graphs, settings files, theme metrics, profile bundles and canvases.
//
// # Formats
//
// The format is chosen from the file extension by [DetectFormat]:
//
//   - .json: plain JSON
//   - .jsonc: JSON with comments and trailing commas
//   - .yaml, .yml: YAML 1.2
//   - .toml: TOML 1.0
//
// [Decode] turns any of them into generic values (map[string]any, []any and
// scalars). JSON numbers are kept as [encoding/json.Number] so integer and
// float values survive unchanged; YAML and TOML numbers arrive as int64 or
// float64. Typed packages (graph, settings, profile) interpret the generic
// value themselves.
//
// # Output
//
// [WriteJSON] and [ExportJSON] write two-space indented JSON, the format
// elkjs and most downstream tools expect. [Encode] writes JSON, YAML or TOML
// using the value's JSON field names, so a settings struct encodes to the
// same keys in every format.
package io

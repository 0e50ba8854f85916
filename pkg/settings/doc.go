// Package settings holds the defaults graphloom applies while building a
// canvas, and resolves them into per-role bundles.
//
// # Overview
//
// A [Settings] value describes:
//
//   - layout_options: root-level ELK options, long-form identifiers only
//   - node_defaults, subgraph_defaults: geometry, label, port and properties
//     for leaf nodes and for nodes with descendants
//   - type_overrides: complete bundles keyed by node type
//   - type_icon_map: icon names keyed by node type
//   - edge_defaults, edge_type_overrides: label and properties for edges
//   - auto_create_missing_nodes, estimate_label_size_from_font: flags
//
// Settings load from JSON, JSONC, YAML or TOML with [Load]. Nested
// layout_options and properties blocks are flattened to dotted keys, so
//
//	[node_defaults.properties.portLabels]
//	placement = "[OUTSIDE]"
//
// and "portLabels.placement" mean the same thing. [Sample] returns the
// built-in defaults used when no settings file is given.
//
// # Resolution
//
// [Resolve] turns Settings into a [Resolver] once per build. It rejects
// unknown layout option identifiers, fills in subgraph defaults from node
// defaults when absent, lower-cases the override maps and normalizes every
// property bundle. The builder only reads the Resolver.
//
// # Themes
//
// [ApplyTheme] adjusts fonts, label heights and edge thickness from a small
// map of theme metrics, returning a modified copy.
package settings

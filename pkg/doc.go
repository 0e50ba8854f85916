// Package pkg provides the libraries behind graphloom.
//
// # Overview
//
// graphloom turns a terse graph description into a canonical ELK JSON
// document that elkjs can lay out directly. Authors write node names, nested
// subgraphs and "node:port" edges; graphloom derives stable identifiers,
// creates ports on demand, resolves every size, label and layout option from
// settings, and emits a fully populated document. The pkg directory is
// organized into four areas:
//
//  1. Canonicalization - [ident], [props], [settings], [builder], [canvas]
//  2. Input and output - [graph], [io], [profile]
//  3. Execution - [pipeline], [elkjs], [render], [cache]
//  4. Serving - [server], [observability], [errors], [buildinfo]
//
// # Architecture
//
// The data flow for one build:
//
//	graph file (json, jsonc, yaml, toml)
//	         ↓
//	    [graph] package (decode + boundary validation)
//	         ↓
//	    [settings] package (settings file, profile bundle or sample; theme)
//	         ↓
//	    [builder] package (scopes, aliases, ports, edges)
//	         ↓
//	    [canvas] ELK JSON document
//	         ↓
//	    [elkjs] layout (optional) / [render/nodelink] preview (optional)
//
// # Quick Start
//
//	g, err := graph.ReadFile("network.yaml")
//	if err != nil {
//	    return err
//	}
//	s, err := settings.Load("elk.toml")
//	if err != nil {
//	    return err
//	}
//	c, err := builder.Build(g, s)
//	if err != nil {
//	    return err
//	}
//	return io.ExportJSON("network.elk.json", c)
//
// # Main Packages
//
// [ident] - Identifier sanitization and alias candidates for node, port and
// edge names, plus "node:port" endpoint parsing.
//
// [props] - The ELK option registry and the property namespace normalizer
// that expands short keys to "org.eclipse.elk." identifiers.
//
// [settings] - Settings documents, the sample settings, themes, and the
// resolver that answers per-type defaults during a build.
//
// [builder] - The scope builder: node registry, alias index, port registry,
// edge resolution and canvas assembly.
//
// [pipeline] - Build, layout and preview stages with caching, shared by the
// CLI and the HTTP server.
//
// # Testing
//
//	go test ./...                  # All tests
//	go test ./pkg/builder/...      # Specific package
//	go test -run Example ./pkg/... # Examples only
package pkg

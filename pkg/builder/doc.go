// Package builder turns an input graph into a canonical ELK canvas.
//
// # Overview
//
// [Build] resolves settings once and then walks the input one scope at a
// time. A scope is the root graph or the inside of one node. For each
// scope the builder:
//
//  1. registers every declared node under its sanitized id and aliases
//  2. scans both endpoints of every local edge, creating missing nodes when
//     settings allow it and collecting node:port tokens as ports
//  3. builds each node, recursing into its own nodes and edges
//  4. resolves each local edge to node or port ids with a unique id
//
// Nodes with descendants become subgraphs: they get subgraph defaults and
// no width or height. Everything else is a sized leaf.
//
// # Identifiers
//
// Node ids come from [ident.Sanitize] of the id override or the name. An
// edge may name a node by any alias: "Core Router 1" is reachable as
// "core_router_1" and "core_1". The first node to claim an alias keeps it,
// but two nodes with the same id in one scope fail with
// [errors.DuplicateIDError].
//
// Port ids are "<node id>_<sanitized port>", indexed in first-seen order.
// Edge ids come from the edge's id, label or name, else a generated
// "edge_xxxxxxxx" token; repeats get "_2", "_3" suffixes.
//
// # Concurrency
//
// A [Builder] is safe for concurrent use. With [WithParallel], sibling
// subgraphs build concurrently; the output and the reported error are the
// same as a serial build.
//
// [ident.Sanitize]: github.com/matzehuels/graphloom/pkg/ident.Sanitize
// [errors.DuplicateIDError]: github.com/matzehuels/graphloom/pkg/errors.DuplicateIDError
package builder

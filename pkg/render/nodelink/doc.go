// Package nodelink renders a canvas as a Graphviz node-link preview.
//
// # Overview
//
// The preview is not an ELK layout. It is a fast approximation that shows
// structure: subgraphs become clusters, leaves become boxes, and edges are
// drawn between the nodes that own their endpoint ports. Port names appear
// as tail and head labels on the edge.
//
// # Usage
//
//	dot := nodelink.ToDOT(c, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: node labels also list the node type and icon
//
// The rank direction follows the canvas' org.eclipse.elk.direction layout
// option (RIGHT, LEFT, DOWN, UP); ELK's layered default of RIGHT applies
// when it is unset.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink

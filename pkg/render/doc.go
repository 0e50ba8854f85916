// Package render converts preview images between formats.
//
// # Overview
//
// graphloom's own output is the ELK JSON canvas; positioned drawings come
// from elkjs. For a quick look without a browser, the [nodelink]
// subpackage renders a canvas through Graphviz as DOT or SVG, and this
// package converts that SVG further:
//
//	dot := nodelink.ToDOT(c, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//	pdf, err := render.ToPDF(ctx, svg)
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert from librsvg.
//
// [nodelink]: github.com/matzehuels/graphloom/pkg/render/nodelink
package render

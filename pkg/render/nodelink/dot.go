package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphloom/pkg/canvas"
	"github.com/matzehuels/graphloom/pkg/props"
)

// Options configures node-link preview rendering.
type Options struct {
	// Detailed adds the node type and icon to leaf labels.
	Detailed bool
}

var rankDirs = map[string]string{
	"RIGHT": "LR",
	"LEFT":  "RL",
	"DOWN":  "TB",
	"UP":    "BT",
}

// endpoint is a DOT node an edge attaches to, with the port label if the
// canvas edge referenced a port.
type endpoint struct {
	node    string
	port    string
	cluster string
}

// scope holds the endpoints addressable by edges declared at one level.
type scope map[string]endpoint

type writer struct {
	buf  bytes.Buffer
	opts Options
}

// ToDOT converts a canvas to Graphviz DOT source.
func ToDOT(c *canvas.Canvas, opts Options) string {
	w := &writer{opts: opts}
	w.buf.WriteString("digraph G {\n")
	fmt.Fprintf(&w.buf, "  rankdir=%s;\n", rankDir(c.LayoutOptions))
	w.buf.WriteString("  compound=true;\n")
	w.buf.WriteString("  bgcolor=\"transparent\";\n")
	w.buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	w.buf.WriteString("  edge [fontsize=10];\n")
	w.buf.WriteString("  ranksep=0.5;\n")
	w.buf.WriteString("  nodesep=0.3;\n")
	w.buf.WriteString("\n")

	w.scope("", c.Children, c.Edges, "  ")

	w.buf.WriteString("}\n")
	return w.buf.String()
}

func rankDir(p props.Properties) string {
	if v, ok := p[props.KeyDirection].Str(); ok {
		if dir, ok := rankDirs[strings.ToUpper(v)]; ok {
			return dir
		}
	}
	return "LR"
}

// scope writes the nodes of one level, then the edges declared there.
// prefix qualifies ids so that equal ids in different subgraphs stay apart.
func (w *writer) scope(prefix string, nodes []*canvas.Node, edges []*canvas.Edge, indent string) {
	sc := scope{}
	for _, n := range nodes {
		id := prefix + n.ID
		if n.IsSubgraph() {
			cluster := "cluster_" + id
			sc[n.ID] = endpoint{node: id, cluster: cluster}
			fmt.Fprintf(&w.buf, "%ssubgraph %q {\n", indent, cluster)
			fmt.Fprintf(&w.buf, "%s  label=%q;\n", indent, n.Text())
			fmt.Fprintf(&w.buf, "%s  style=\"rounded,dashed\";\n", indent)
			fmt.Fprintf(&w.buf, "%s  %q [shape=point, style=invis, width=0, height=0, label=\"\"];\n", indent, id)
			w.scope(id+"/", n.Children, n.Edges, indent+"  ")
			fmt.Fprintf(&w.buf, "%s}\n", indent)
		} else {
			sc[n.ID] = endpoint{node: id}
			fmt.Fprintf(&w.buf, "%s%q [label=%q];\n", indent, id, w.label(n))
		}
		for _, p := range n.Ports {
			ep := sc[n.ID]
			ep.port = portText(p)
			sc[p.ID] = ep
		}
	}

	if len(edges) > 0 {
		w.buf.WriteString("\n")
	}
	for _, e := range edges {
		for _, src := range e.Sources {
			for _, dst := range e.Targets {
				from, okFrom := sc[src]
				to, okTo := sc[dst]
				if !okFrom || !okTo {
					continue
				}
				fmt.Fprintf(&w.buf, "%s%q -> %q", indent, from.node, to.node)
				if attrs := edgeAttrs(e, from, to); len(attrs) > 0 {
					fmt.Fprintf(&w.buf, " [%s]", strings.Join(attrs, ", "))
				}
				w.buf.WriteString(";\n")
			}
		}
	}
}

func (w *writer) label(n *canvas.Node) string {
	text := n.Text()
	if !w.opts.Detailed {
		return text
	}
	parts := []string{text, "type: " + n.Type}
	if n.Icon != "" {
		parts = append(parts, "icon: "+n.Icon)
	}
	return strings.Join(parts, "\n")
}

func portText(p canvas.Port) string {
	if len(p.Labels) > 0 && p.Labels[0].Text != "" {
		return p.Labels[0].Text
	}
	return p.ID
}

func edgeAttrs(e *canvas.Edge, from, to endpoint) []string {
	var attrs []string
	if len(e.Labels) > 0 && e.Labels[0].Text != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Labels[0].Text))
	}
	if from.port != "" {
		attrs = append(attrs, fmt.Sprintf("taillabel=%q", from.port))
	}
	if to.port != "" {
		attrs = append(attrs, fmt.Sprintf("headlabel=%q", to.port))
	}
	if from.cluster != "" {
		attrs = append(attrs, fmt.Sprintf("ltail=%q", from.cluster))
	}
	if to.cluster != "" {
		attrs = append(attrs, fmt.Sprintf("lhead=%q", to.cluster))
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag to a zero-origin viewBox with
// matching pixel size so the preview scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

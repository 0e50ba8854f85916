// Package canvas defines the canonical ELK JSON document graphloom produces.
//
// The types mirror the ELK JSON format: a root [Canvas] holding layout
// options, top-level [Node] children and [Edge]s; nodes nest further
// children and edges, carry [Port]s, and every element carries [Label]s and
// [props.Properties]. A Canvas can be marshalled directly and handed to
// elkjs.
package canvas

import (
	"github.com/matzehuels/graphloom/pkg/props"
)

// RootID is the id of every canvas root.
const RootID = "canvas"

// TypeSubgraph is the effective type of nodes that have descendants.
const TypeSubgraph = "subgraph"

// Canvas is the root of an ELK JSON document.
type Canvas struct {
	ID            string           `json:"id"`
	LayoutOptions props.Properties `json:"layoutOptions"`
	Children      []*Node          `json:"children"`
	Edges         []*Edge          `json:"edges"`
}

// Node is a leaf node or a subgraph. Subgraphs leave Width and Height nil.
type Node struct {
	ID         string           `json:"id"`
	Type       string           `json:"type"`
	Icon       string           `json:"icon,omitempty"`
	Width      *float64         `json:"width,omitempty"`
	Height     *float64         `json:"height,omitempty"`
	Labels     []Label          `json:"labels"`
	Ports      []Port           `json:"ports"`
	Children   []*Node          `json:"children"`
	Edges      []*Edge          `json:"edges"`
	Properties props.Properties `json:"properties"`
}

// IsSubgraph reports whether n has child nodes or local edges.
func (n *Node) IsSubgraph() bool {
	return len(n.Children) > 0 || len(n.Edges) > 0
}

// Text returns the text of the node's first label, or its id.
func (n *Node) Text() string {
	if len(n.Labels) > 0 {
		return n.Labels[0].Text
	}
	return n.ID
}

// Port is a connection point on a node.
type Port struct {
	ID         string           `json:"id"`
	Width      float64          `json:"width"`
	Height     float64          `json:"height"`
	Labels     []Label          `json:"labels"`
	Properties props.Properties `json:"properties"`
}

// Index returns the port's stamped org.eclipse.elk.port.index.
func (p *Port) Index() (int, bool) {
	i, ok := p.Properties[props.KeyPortIndex].Int()
	return int(i), ok
}

// Edge connects node or port ids. ELK allows hyperedges, so sources and
// targets are lists; graphloom always emits one of each.
type Edge struct {
	ID         string           `json:"id"`
	Sources    []string         `json:"sources"`
	Targets    []string         `json:"targets"`
	Labels     []Label          `json:"labels"`
	Properties props.Properties `json:"properties"`
}

// Label is a sized text label.
type Label struct {
	Text       string           `json:"text"`
	Width      float64          `json:"width"`
	Height     float64          `json:"height"`
	Properties props.Properties `json:"properties"`
}

// Stats summarizes a canvas.
type Stats struct {
	Nodes     int `json:"nodes"`
	Subgraphs int `json:"subgraphs"`
	Ports     int `json:"ports"`
	Edges     int `json:"edges"`
	Depth     int `json:"depth"`
}

// Stats counts elements across all nesting levels.
func (c *Canvas) Stats() Stats {
	var s Stats
	s.Edges = len(c.Edges)
	Walk(c, func(n *Node, depth int) {
		s.Nodes++
		s.Ports += len(n.Ports)
		s.Edges += len(n.Edges)
		if n.IsSubgraph() {
			s.Subgraphs++
		}
		if depth > s.Depth {
			s.Depth = depth
		}
	})
	return s
}

// Walk visits every node depth first in document order. Top-level nodes
// have depth 1.
func Walk(c *Canvas, fn func(n *Node, depth int)) {
	var visit func(nodes []*Node, depth int)
	visit = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			fn(n, depth)
			visit(n.Children, depth+1)
		}
	}
	visit(c.Children, 1)
}

// Find returns the node with the given id anywhere in the tree.
// Ids are only unique per scope, so the first match in document order wins.
func (c *Canvas) Find(id string) *Node {
	var found *Node
	Walk(c, func(n *Node, _ int) {
		if found == nil && n.ID == id {
			found = n
		}
	})
	return found
}

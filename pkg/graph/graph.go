package graph

import (
	"github.com/matzehuels/graphloom/pkg/props"
)

// MaxDepth is the deepest node nesting [Validate] accepts.
const MaxDepth = 64

// Graph is the root scope of an input graph.
type Graph struct {
	Nodes []NodeSpec `json:"nodes" validate:"dive"`
	Edges []EdgeSpec `json:"edges,omitempty" validate:"dive"`
}

// NodeSpec describes one node. A node with Nodes or Edges is a subgraph.
type NodeSpec struct {
	Name       string           `json:"name" validate:"nodename"`
	Type       string           `json:"type,omitempty"`
	ID         string           `json:"id,omitempty"`
	Nodes      []NodeSpec       `json:"nodes,omitempty" validate:"dive"`
	Edges      []EdgeSpec       `json:"edges,omitempty" validate:"dive"`
	Properties props.Properties `json:"properties,omitempty"`
}

// HasChildren reports whether n declares nested nodes or edges.
func (n *NodeSpec) HasChildren() bool {
	return len(n.Nodes) > 0 || len(n.Edges) > 0
}

// EdgeSpec describes one edge. From and To are endpoint tokens of the form
// node or node:port. Empty optional fields count as absent.
type EdgeSpec struct {
	ID         string           `json:"id,omitempty"`
	Name       string           `json:"name,omitempty" validate:"omitempty,edgename"`
	Label      string           `json:"label,omitempty" validate:"omitempty,edgename"`
	Type       string           `json:"type,omitempty"`
	From       string           `json:"from" validate:"endpoint"`
	To         string           `json:"to" validate:"endpoint"`
	Properties props.Properties `json:"properties,omitempty"`
}

// Stats summarizes the size of an input graph.
type Stats struct {
	Nodes     int `json:"nodes"`
	Subgraphs int `json:"subgraphs"`
	Edges     int `json:"edges"`
	Depth     int `json:"depth"`
}

// Stats counts declared nodes and edges across all scopes. Nodes that
// edges would auto-create are not counted.
func (g *Graph) Stats() Stats {
	s := Stats{Edges: len(g.Edges)}
	var walk func(nodes []NodeSpec, depth int)
	walk = func(nodes []NodeSpec, depth int) {
		for i := range nodes {
			n := &nodes[i]
			s.Nodes++
			s.Edges += len(n.Edges)
			if n.HasChildren() {
				s.Subgraphs++
			}
			s.Depth = max(s.Depth, depth)
			walk(n.Nodes, depth+1)
		}
	}
	walk(g.Nodes, 1)
	return s
}

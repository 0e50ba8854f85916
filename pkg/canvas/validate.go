package canvas

import (
	"fmt"

	"github.com/matzehuels/graphloom/pkg/errors"
)

// Validate checks the structural invariants of a canvas:
//   - node ids are unique within each scope
//   - edge ids are unique within each scope
//   - port ids are unique within their node and port indices run 0..n-1
//   - subgraphs carry no width or height; leaves carry both
//
// Violations are reported as INVALID_CANVAS errors naming the element path.
func Validate(c *Canvas) error {
	if c.ID == "" {
		return errors.New(errors.ErrCodeInvalidCanvas, "canvas id is empty")
	}
	return validateScope(c.ID, c.Children, c.Edges)
}

func validateScope(path string, nodes []*Node, edges []*Edge) error {
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if seen[n.ID] {
			return errors.New(errors.ErrCodeInvalidCanvas, "%s: child ids must be unique, %q repeats", path, n.ID)
		}
		seen[n.ID] = true
		if err := validateNode(path+"/"+n.ID, n); err != nil {
			return err
		}
	}

	edgeIDs := make(map[string]bool, len(edges))
	for _, e := range edges {
		if edgeIDs[e.ID] {
			return errors.New(errors.ErrCodeInvalidCanvas, "%s: edge ids must be unique, %q repeats", path, e.ID)
		}
		edgeIDs[e.ID] = true
	}
	return nil
}

func validateNode(path string, n *Node) error {
	if n.IsSubgraph() {
		if n.Width != nil || n.Height != nil {
			return errors.New(errors.ErrCodeInvalidCanvas, "%s: subgraph nodes must not define width or height", path)
		}
	} else if n.Width == nil || n.Height == nil {
		return errors.New(errors.ErrCodeInvalidCanvas, "%s: leaf nodes must define both width and height", path)
	}

	ports := make(map[string]bool, len(n.Ports))
	for i := range n.Ports {
		p := &n.Ports[i]
		if ports[p.ID] {
			return errors.New(errors.ErrCodeInvalidCanvas, "%s: port ids must be unique, %q repeats", path, p.ID)
		}
		ports[p.ID] = true
		if idx, ok := p.Index(); !ok || idx != i {
			return errors.New(errors.ErrCodeInvalidCanvas, "%s: port %q has index %s, want %d", path, p.ID, indexString(p), i)
		}
	}

	return validateScope(path, n.Children, n.Edges)
}

func indexString(p *Port) string {
	if idx, ok := p.Index(); ok {
		return fmt.Sprint(idx)
	}
	return "<missing>"
}

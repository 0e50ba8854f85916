package builder

import (
	"fmt"

	"github.com/matzehuels/graphloom/pkg/canvas"
	"github.com/matzehuels/graphloom/pkg/graph"
	"github.com/matzehuels/graphloom/pkg/ident"
	"github.com/matzehuels/graphloom/pkg/props"
)

// edgeIDs hands out unique edge ids within one scope.
type edgeIDs struct {
	counts map[string]int
	used   map[string]bool
}

// next returns base the first time, then base_2, base_3 and so on,
// skipping ids an earlier edge already holds.
func (e *edgeIDs) next(base string) string {
	for {
		e.counts[base]++
		id := base
		if n := e.counts[base]; n > 1 {
			id = fmt.Sprintf("%s_%d", base, n)
		}
		if !e.used[id] {
			e.used[id] = true
			return id
		}
	}
}

// buildEdges resolves the edges of one scope. Every endpoint node was
// registered during the port scan, so resolution cannot create nodes here.
func (b *Builder) buildEdges(scope string, reg *registry, ports *portRegistry, specs []graph.EdgeSpec) ([]*canvas.Edge, error) {
	ids := &edgeIDs{counts: make(map[string]int), used: make(map[string]bool)}
	out := make([]*canvas.Edge, 0, len(specs))

	for i := range specs {
		e := &specs[i]
		source, err := b.endpoint(reg, ports, e.From)
		if err != nil {
			return nil, err
		}
		target, err := b.endpoint(reg, ports, e.To)
		if err != nil {
			return nil, err
		}

		basis := firstNonEmpty(e.ID, e.Label, e.Name)
		if basis == "" {
			basis = b.edgeID(scope, i, e)
		}

		d := b.res.EdgeDefaultsFor(e.Type)
		explicit := e.Properties.Clone()
		if e.Type != "" {
			explicit[KeyEdgeType] = props.String(e.Type)
		}

		out = append(out, &canvas.Edge{
			ID:         ids.next(ident.Sanitize(basis)),
			Sources:    []string{source},
			Targets:    []string{target},
			Labels:     []canvas.Label{b.label(firstNonEmpty(e.Label, e.Name, d.Label.Text), d.Label)},
			Properties: props.Merge(d.Properties, explicit),
		})
	}
	return out, nil
}

// endpoint returns the node id or port id an endpoint token refers to.
func (b *Builder) endpoint(reg *registry, ports *portRegistry, token string) (string, error) {
	node, port, hasPort := ident.SplitEndpoint(token)
	rec, err := reg.resolve(node)
	if err != nil {
		return "", err
	}
	if !hasPort {
		return rec.id, nil
	}
	return ports.add(rec.id, port).id, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

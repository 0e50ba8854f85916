package builder

import (
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/graphloom/pkg/canvas"
	"github.com/matzehuels/graphloom/pkg/graph"
	"github.com/matzehuels/graphloom/pkg/ident"
	"github.com/matzehuels/graphloom/pkg/props"
	"github.com/matzehuels/graphloom/pkg/settings"
)

// buildScope builds the nodes and edges declared at one nesting level.
// scope is the slash-joined id path of the enclosing nodes.
func (b *Builder) buildScope(scope string, nodes []graph.NodeSpec, edges []graph.EdgeSpec) ([]*canvas.Node, []*canvas.Edge, error) {
	reg := newRegistry(b.res.NodeType(), b.res.AutoCreate())
	for i := range nodes {
		n := &nodes[i]
		if _, err := reg.register(n.Name, n.Type, n.ID, n); err != nil {
			return nil, nil, err
		}
	}

	ports := newPortRegistry()
	for i := range edges {
		for _, endpoint := range [2]string{edges[i].From, edges[i].To} {
			node, port, hasPort := ident.SplitEndpoint(endpoint)
			rec, err := reg.resolve(node)
			if err != nil {
				return nil, nil, err
			}
			if hasPort {
				ports.add(rec.id, port)
			}
		}
	}

	children, err := b.buildNodes(scope, reg.records(), ports)
	if err != nil {
		return nil, nil, err
	}
	out, err := b.buildEdges(scope, reg, ports, edges)
	if err != nil {
		return nil, nil, err
	}
	return children, out, nil
}

// buildNodes builds recs in order. In parallel mode, nodes with children
// build concurrently and the first error in declaration order wins.
func (b *Builder) buildNodes(scope string, recs []*nodeRecord, ports *portRegistry) ([]*canvas.Node, error) {
	out := make([]*canvas.Node, len(recs))
	errs := make([]error, len(recs))

	var g errgroup.Group
	for i, rec := range recs {
		if b.parallel && rec.hasChildren() {
			g.Go(func() error {
				out[i], errs[i] = b.buildNode(scope, rec, ports.of(rec.id))
				return nil
			})
			continue
		}
		out[i], errs[i] = b.buildNode(scope, rec, ports.of(rec.id))
		if errs[i] != nil && !b.parallel {
			return nil, errs[i]
		}
	}
	g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// buildNode builds one node and, recursively, its subtree.
func (b *Builder) buildNode(scope string, rec *nodeRecord, ports []*portRecord) (*canvas.Node, error) {
	children := []*canvas.Node{}
	edges := []*canvas.Edge{}
	if rec.hasChildren() {
		var err error
		children, edges, err = b.buildScope(scope+"/"+rec.id, rec.spec.Nodes, rec.spec.Edges)
		if err != nil {
			return nil, err
		}
	}

	subgraph := len(children) > 0 || len(edges) > 0
	typ := rec.typ
	if subgraph {
		typ = canvas.TypeSubgraph
	}
	d := b.res.DefaultsFor(typ, subgraph)

	var explicit props.Properties
	if rec.spec != nil {
		explicit = rec.spec.Properties
	}

	n := &canvas.Node{
		ID:         rec.id,
		Type:       typ,
		Icon:       b.res.IconFor(typ, subgraph),
		Labels:     []canvas.Label{b.label(rec.label, d.Label)},
		Ports:      make([]canvas.Port, 0, len(ports)),
		Children:   children,
		Edges:      edges,
		Properties: props.Merge(d.Properties, explicit),
	}

	for i, p := range ports {
		pp := props.Merge(d.Port.Properties, nil)
		delete(pp, "port.index")
		pp[props.KeyPortIndex] = props.Int(int64(i))
		n.Ports = append(n.Ports, canvas.Port{
			ID:         p.id,
			Width:      d.Port.Width,
			Height:     d.Port.Height,
			Labels:     []canvas.Label{b.label(p.label, d.Port.Label)},
			Properties: pp,
		})
	}

	if !subgraph {
		w, h := b.res.LeafSize()
		if d.Width != nil {
			w = *d.Width
		}
		if d.Height != nil {
			h = *d.Height
		}
		n.Width, n.Height = &w, &h
	}
	return n, nil
}

func (b *Builder) label(text string, d settings.LabelDefaults) canvas.Label {
	p := props.Merge(d.Properties, nil)
	w, h := b.res.LabelSize(text, d, p)
	return canvas.Label{Text: text, Width: w, Height: h, Properties: p}
}

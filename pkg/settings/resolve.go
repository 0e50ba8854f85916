package settings

import (
	"strings"

	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/props"
)

// Resolver answers defaults queries for one build. It is read-only after
// [Resolve] returns and safe for concurrent use. Bundles it returns share
// property maps with the Resolver and must not be modified.
type Resolver struct {
	layout        props.Properties
	node          NodeDefaults
	subgraph      NodeDefaults
	typeOverrides map[string]NodeDefaults
	icons         map[string]string
	edge          EdgeDefaults
	edgeOverrides map[string]EdgeDefaults
	autoCreate    bool
	estimate      bool
}

// Resolve prepares s for a build. A nil s resolves [Sample].
//
// Layout option keys must be registered long-form identifiers; every
// offending key is reported in one [errors.UnknownLayoutOptionError].
func Resolve(s *Settings) (*Resolver, error) {
	if s == nil {
		s = Sample()
	}
	if unknown := props.UnknownKeys(s.LayoutOptions); len(unknown) > 0 {
		return nil, &errors.UnknownLayoutOptionError{Keys: unknown}
	}

	r := &Resolver{
		layout:        props.Normalize(s.LayoutOptions),
		node:          normalizeNode(s.NodeDefaults),
		typeOverrides: make(map[string]NodeDefaults, len(s.TypeOverrides)),
		icons:         make(map[string]string, len(s.TypeIconMap)),
		edge:          normalizeEdge(s.EdgeDefaults),
		edgeOverrides: make(map[string]EdgeDefaults, len(s.EdgeTypeOverrides)),
		autoCreate:    s.AutoCreateMissingNodes,
		estimate:      s.EstimateLabelSizeFromFont,
	}

	if s.SubgraphDefaults != nil {
		r.subgraph = normalizeNode(*s.SubgraphDefaults)
	} else {
		r.subgraph = normalizeNode(s.NodeDefaults.clone())
		r.subgraph.Type = TypeSubgraph
		r.subgraph.Width = nil
		r.subgraph.Height = nil
	}

	for k, v := range s.TypeOverrides {
		r.typeOverrides[strings.ToLower(k)] = normalizeNode(v)
	}
	for k, v := range s.TypeIconMap {
		r.icons[strings.ToLower(k)] = v
	}
	for k, v := range s.EdgeTypeOverrides {
		r.edgeOverrides[strings.ToLower(k)] = normalizeEdge(v)
	}
	return r, nil
}

func normalizeLabel(d LabelDefaults) LabelDefaults {
	d.Properties = props.Normalize(d.Properties)
	return d
}

func normalizeNode(d NodeDefaults) NodeDefaults {
	d.Label = normalizeLabel(d.Label)
	d.Port.Label = normalizeLabel(d.Port.Label)
	d.Port.Properties = props.Normalize(d.Port.Properties)
	d.Properties = props.Normalize(d.Properties)
	return d
}

func normalizeEdge(d EdgeDefaults) EdgeDefaults {
	d.Label = normalizeLabel(d.Label)
	d.Properties = props.Normalize(d.Properties)
	return d
}

// DefaultsFor returns the type override for typ (case-insensitive) when one
// exists, else the subgraph or leaf role defaults.
func (r *Resolver) DefaultsFor(typ string, subgraph bool) NodeDefaults {
	if d, ok := r.typeOverrides[strings.ToLower(typ)]; ok {
		return d
	}
	return r.roleDefaults(subgraph)
}

func (r *Resolver) roleDefaults(subgraph bool) NodeDefaults {
	if subgraph {
		return r.subgraph
	}
	return r.node
}

// IconFor returns the icon for a node of type typ: the override bundle's
// own icon, then the type icon map, then the role default's icon.
func (r *Resolver) IconFor(typ string, subgraph bool) string {
	key := strings.ToLower(typ)
	if d, ok := r.typeOverrides[key]; ok && d.Icon != "" {
		return d.Icon
	}
	if icon, ok := r.icons[key]; ok {
		return icon
	}
	return r.roleDefaults(subgraph).Icon
}

// EdgeDefaultsFor returns the edge override for typ (trimmed,
// case-insensitive) when one exists, else the edge defaults.
func (r *Resolver) EdgeDefaultsFor(typ string) EdgeDefaults {
	if d, ok := r.edgeOverrides[strings.ToLower(strings.TrimSpace(typ))]; ok {
		return d
	}
	return r.edge
}

// NodeType returns the lower-cased default node type.
func (r *Resolver) NodeType() string { return strings.ToLower(r.node.Type) }

// AutoCreate reports whether unknown edge endpoints create nodes.
func (r *Resolver) AutoCreate() bool { return r.autoCreate }

// EstimatesLabels reports whether label sizes are estimated from fonts.
func (r *Resolver) EstimatesLabels() bool { return r.estimate }

// LayoutOptions returns a copy of the validated root layout options.
func (r *Resolver) LayoutOptions() props.Properties { return r.layout.Clone() }

// LeafSize returns the width and height of the leaf node defaults, used
// when a type override omits them.
func (r *Resolver) LeafSize() (w, h float64) {
	if r.node.Width != nil {
		w = *r.node.Width
	}
	if r.node.Height != nil {
		h = *r.node.Height
	}
	return w, h
}

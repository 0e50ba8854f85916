package settings

import (
	"maps"

	"github.com/matzehuels/graphloom/pkg/props"
)

// TypeSubgraph is the node type given to subgraph defaults derived from
// node defaults.
const TypeSubgraph = "subgraph"

// LabelDefaults is the default size, text and properties of a label.
type LabelDefaults struct {
	Text       string           `json:"text"`
	Width      float64          `json:"width" validate:"gte=0"`
	Height     float64          `json:"height" validate:"gte=0"`
	Properties props.Properties `json:"properties,omitempty"`
}

// PortDefaults is the default size, label and properties of a port.
type PortDefaults struct {
	Width      float64          `json:"width" validate:"gte=0"`
	Height     float64          `json:"height" validate:"gte=0"`
	Label      LabelDefaults    `json:"label"`
	Properties props.Properties `json:"properties,omitempty"`
}

// NodeDefaults is a complete defaults bundle for one node role or type.
// Width and Height are nil for subgraph bundles.
type NodeDefaults struct {
	Type       string           `json:"type" validate:"required"`
	Icon       string           `json:"icon,omitempty"`
	Width      *float64         `json:"width,omitempty" validate:"omitempty,gte=0"`
	Height     *float64         `json:"height,omitempty" validate:"omitempty,gte=0"`
	Label      LabelDefaults    `json:"label"`
	Port       PortDefaults     `json:"port"`
	Properties props.Properties `json:"properties,omitempty"`
}

// EdgeDefaults is the default label and properties of an edge.
type EdgeDefaults struct {
	Label      LabelDefaults    `json:"label"`
	Properties props.Properties `json:"properties,omitempty"`
}

// Settings configures a canvas build.
type Settings struct {
	LayoutOptions             props.Properties        `json:"layout_options"`
	NodeDefaults              NodeDefaults            `json:"node_defaults"`
	SubgraphDefaults          *NodeDefaults           `json:"subgraph_defaults,omitempty"`
	TypeOverrides             map[string]NodeDefaults `json:"type_overrides,omitempty" validate:"dive"`
	TypeIconMap               map[string]string       `json:"type_icon_map,omitempty"`
	EdgeDefaults              EdgeDefaults            `json:"edge_defaults"`
	EdgeTypeOverrides         map[string]EdgeDefaults `json:"edge_type_overrides,omitempty" validate:"dive"`
	AutoCreateMissingNodes    bool                    `json:"auto_create_missing_nodes"`
	EstimateLabelSizeFromFont bool                    `json:"estimate_label_size_from_font"`
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	out := *s
	out.LayoutOptions = s.LayoutOptions.Clone()
	out.NodeDefaults = s.NodeDefaults.clone()
	if s.SubgraphDefaults != nil {
		sub := s.SubgraphDefaults.clone()
		out.SubgraphDefaults = &sub
	}
	if s.TypeOverrides != nil {
		out.TypeOverrides = make(map[string]NodeDefaults, len(s.TypeOverrides))
		for k, v := range s.TypeOverrides {
			out.TypeOverrides[k] = v.clone()
		}
	}
	if s.TypeIconMap != nil {
		out.TypeIconMap = maps.Clone(s.TypeIconMap)
	}
	out.EdgeDefaults = s.EdgeDefaults.clone()
	if s.EdgeTypeOverrides != nil {
		out.EdgeTypeOverrides = make(map[string]EdgeDefaults, len(s.EdgeTypeOverrides))
		for k, v := range s.EdgeTypeOverrides {
			out.EdgeTypeOverrides[k] = v.clone()
		}
	}
	return &out
}

func (d LabelDefaults) clone() LabelDefaults {
	d.Properties = d.Properties.Clone()
	return d
}

func (d PortDefaults) clone() PortDefaults {
	d.Label = d.Label.clone()
	d.Properties = d.Properties.Clone()
	return d
}

func (d NodeDefaults) clone() NodeDefaults {
	if d.Width != nil {
		w := *d.Width
		d.Width = &w
	}
	if d.Height != nil {
		h := *d.Height
		d.Height = &h
	}
	d.Label = d.Label.clone()
	d.Port = d.Port.clone()
	d.Properties = d.Properties.Clone()
	return d
}

func (d EdgeDefaults) clone() EdgeDefaults {
	d.Label = d.Label.clone()
	d.Properties = d.Properties.Clone()
	return d
}

// labels returns pointers to every label bundle in s, in a fixed order:
// node, node port, subgraph, subgraph port, edge.
func (s *Settings) labels() []*LabelDefaults {
	out := []*LabelDefaults{&s.NodeDefaults.Label, &s.NodeDefaults.Port.Label}
	if s.SubgraphDefaults != nil {
		out = append(out, &s.SubgraphDefaults.Label, &s.SubgraphDefaults.Port.Label)
	}
	return append(out, &s.EdgeDefaults.Label)
}

func setProp(p *props.Properties, key string, v props.Value) {
	if *p == nil {
		*p = make(props.Properties)
	}
	(*p)[key] = v
}

// Float returns a pointer to f, for building NodeDefaults literals.
func Float(f float64) *float64 { return &f }

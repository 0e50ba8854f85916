package builder

import (
	"slices"
	"strings"

	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/graph"
	"github.com/matzehuels/graphloom/pkg/ident"
)

// nodeRecord is a node registered in one scope.
type nodeRecord struct {
	id      string
	label   string
	typ     string
	aliases []string
	spec    *graph.NodeSpec // nil for auto-created nodes
}

func (r *nodeRecord) hasChildren() bool {
	return r.spec != nil && r.spec.HasChildren()
}

// registry holds the nodes of one scope in registration order, plus the
// alias index used to resolve edge endpoints.
type registry struct {
	defaultType string
	autoCreate  bool

	order   []*nodeRecord
	byID    map[string]*nodeRecord
	aliases map[string]string
}

func newRegistry(defaultType string, autoCreate bool) *registry {
	return &registry{
		defaultType: defaultType,
		autoCreate:  autoCreate,
		byID:        make(map[string]*nodeRecord),
		aliases:     make(map[string]string),
	}
}

// register adds a node. The id comes from idOverride when set, else label.
// Aliases already claimed by an earlier node stay with that node.
func (r *registry) register(label, typ, idOverride string, spec *graph.NodeSpec) (*nodeRecord, error) {
	source := label
	if idOverride != "" {
		source = idOverride
	}
	id := ident.Sanitize(source)
	if _, exists := r.byID[id]; exists {
		return nil, &errors.DuplicateIDError{ID: id, Source: source}
	}
	if typ == "" {
		typ = r.defaultType
	}

	aliases := ident.AliasCandidates(label)
	if idOverride != "" {
		for _, a := range ident.AliasCandidates(idOverride) {
			if !slices.Contains(aliases, a) {
				aliases = append(aliases, a)
			}
		}
	}

	rec := &nodeRecord{
		id:      id,
		label:   label,
		typ:     strings.ToLower(typ),
		aliases: aliases,
		spec:    spec,
	}
	r.order = append(r.order, rec)
	r.byID[id] = rec
	for _, a := range aliases {
		r.claim(a, id)
	}
	r.claim(id, id)
	return rec, nil
}

func (r *registry) claim(alias, id string) {
	if _, taken := r.aliases[alias]; !taken {
		r.aliases[alias] = id
	}
}

// resolve finds the node an endpoint token names. Unknown tokens create a
// node labelled with the token when auto-creation is on.
func (r *registry) resolve(token string) (*nodeRecord, error) {
	if id, ok := r.aliases[ident.Sanitize(token)]; ok {
		return r.byID[id], nil
	}
	if !r.autoCreate {
		return nil, &errors.UnknownNodeError{Token: token}
	}
	return r.register(token, "", "", nil)
}

func (r *registry) records() []*nodeRecord { return r.order }

package builder

import (
	"github.com/matzehuels/graphloom/pkg/ident"
)

// portRecord is a port placeholder derived from an edge endpoint. Its
// index is its position in the owning node's port list.
type portRecord struct {
	id    string
	label string
}

// portRegistry collects the ports of every node in one scope, each node's
// ports in first-seen order.
type portRegistry struct {
	byNode map[string][]*portRecord
	byKey  map[string]map[string]*portRecord
}

func newPortRegistry() *portRegistry {
	return &portRegistry{
		byNode: make(map[string][]*portRecord),
		byKey:  make(map[string]map[string]*portRecord),
	}
}

// add records port token on nodeID unless a port with the same sanitized
// key exists. The first spelling seen becomes the label.
func (p *portRegistry) add(nodeID, token string) *portRecord {
	key := ident.Sanitize(token)
	keys, ok := p.byKey[nodeID]
	if !ok {
		keys = make(map[string]*portRecord)
		p.byKey[nodeID] = keys
	}
	if rec, ok := keys[key]; ok {
		return rec
	}
	rec := &portRecord{id: nodeID + "_" + key, label: token}
	keys[key] = rec
	p.byNode[nodeID] = append(p.byNode[nodeID], rec)
	return rec
}

// of returns the ports of nodeID in index order.
func (p *portRegistry) of(nodeID string) []*portRecord {
	return p.byNode[nodeID]
}

package props

import (
	"maps"
	"slices"
	"strings"
)

// Kind is the value kind an option accepts.
type Kind uint8

// Option value kinds.
const (
	KindAny Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindEnum
	KindEnumSet
	KindIntList
)

var kindNames = map[Kind]string{
	KindAny:     "any",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindString:  "string",
	KindEnum:    "enum",
	KindEnumSet: "enum set",
	KindIntList: "int list",
}

// String returns the kind name.
func (k Kind) String() string { return kindNames[k] }

// Target is a bitmask of graph elements an option applies to.
type Target uint8

// Option targets.
const (
	TargetParent Target = 1 << iota
	TargetNode
	TargetEdge
	TargetPort
	TargetLabel
)

// String lists the targets, e.g. "parent,node".
func (t Target) String() string {
	var names []string
	for _, e := range []struct {
		t    Target
		name string
	}{
		{TargetParent, "parent"},
		{TargetNode, "node"},
		{TargetEdge, "edge"},
		{TargetPort, "port"},
		{TargetLabel, "label"},
	} {
		if t&e.t != 0 {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, ",")
}

// Option describes one registered layout option.
type Option struct {
	Kind    Kind
	Targets Target
}

// Lookup returns the option registered under the long-form identifier id.
func Lookup(id string) (Option, bool) {
	opt, ok := options[id]
	return opt, ok
}

// Known reports whether id is a registered long-form identifier.
func Known(id string) bool {
	_, ok := options[id]
	return ok
}

// Identifiers returns every registered identifier in sorted order.
func Identifiers() []string {
	return slices.Sorted(maps.Keys(options))
}

// UnknownKeys returns the keys of p that are not registered long-form
// identifiers, sorted. Short forms count as unknown here: callers validating
// layout options expect exact identifiers.
func UnknownKeys(p Properties) []string {
	var unknown []string
	for k := range p {
		if !Known(k) {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// Entry is a registered option with its identifier.
type Entry struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	Targets Target `json:"targets"`
}

// Search returns the options whose identifier contains filter, ignoring
// case, sorted by identifier. An empty filter returns every option.
func Search(filter string) []Entry {
	filter = strings.ToLower(strings.TrimSpace(filter))
	var out []Entry
	for _, id := range Identifiers() {
		if filter != "" && !strings.Contains(strings.ToLower(id), filter) {
			continue
		}
		opt := options[id]
		out = append(out, Entry{ID: id, Kind: opt.Kind, Targets: opt.Targets})
	}
	return out
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// MarshalText encodes the targets as a comma separated list.
func (t Target) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

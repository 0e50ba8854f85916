package graph

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/ident"
	"github.com/matzehuels/graphloom/pkg/props"
)

// FromMap converts a decoded document into a Graph, resolving bare-string
// nodes, link shorthand and field aliases. Unknown fields are ignored.
// Errors are INVALID_INPUT and name the offending path.
func FromMap(v any) (*Graph, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalid("", "graph must be an object, got %s", typeName(v))
	}
	raw, ok := m["nodes"]
	if !ok {
		return nil, invalid("nodes", "field required")
	}
	nodes, err := nodeList(raw, "nodes")
	if err != nil {
		return nil, err
	}
	edgesKey, rawEdges := pick(m, "edges", "links")
	edges, err := edgeList(rawEdges, edgesKey)
	if err != nil {
		return nil, err
	}
	return &Graph{Nodes: nodes, Edges: edges}, nil
}

func nodeList(v any, path string) ([]NodeSpec, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, invalid(path, "must be a list, got %s", typeName(v))
	}
	out := make([]NodeSpec, 0, len(items))
	for i, item := range items {
		n, err := nodeSpec(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func nodeSpec(v any, path string) (NodeSpec, error) {
	if s, ok := v.(string); ok {
		return NodeSpec{Name: s}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return NodeSpec{}, invalid(path, "node must be a string or an object, got %s", typeName(v))
	}

	var n NodeSpec
	var err error
	key, raw := pick(m, "name", "l")
	if raw == nil {
		return NodeSpec{}, invalid(path+".name", "field required")
	}
	if n.Name, err = str(raw, path+"."+key); err != nil {
		return NodeSpec{}, err
	}
	if key, raw = pick(m, "type", "t"); raw != nil {
		if n.Type, err = str(raw, path+"."+key); err != nil {
			return NodeSpec{}, err
		}
	}
	if raw = m["id"]; raw != nil {
		if n.ID, err = str(raw, path+".id"); err != nil {
			return NodeSpec{}, err
		}
	}
	if n.Nodes, err = nodeList(m["nodes"], path+".nodes"); err != nil {
		return NodeSpec{}, err
	}
	key, raw = pick(m, "edges", "links")
	if n.Edges, err = edgeList(raw, path+"."+key); err != nil {
		return NodeSpec{}, err
	}
	if n.Properties, err = properties(m["properties"], path+".properties"); err != nil {
		return NodeSpec{}, err
	}
	return n, nil
}

func edgeList(v any, path string) ([]EdgeSpec, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, invalid(path, "must be a list, got %s", typeName(v))
	}
	out := make([]EdgeSpec, 0, len(items))
	for i, item := range items {
		e, err := edgeSpec(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func edgeSpec(v any, path string) (EdgeSpec, error) {
	if s, ok := v.(string); ok {
		from, to, err := ident.ParseLinkShorthand(s)
		if err != nil {
			return EdgeSpec{}, invalid(path, "%v", err)
		}
		return EdgeSpec{From: from, To: to}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return EdgeSpec{}, invalid(path, "edge must be a string or an object, got %s", typeName(v))
	}

	var e EdgeSpec
	fields := []struct {
		dst      *string
		names    []string
		required bool
	}{
		{&e.ID, []string{"id"}, false},
		{&e.Name, []string{"name"}, false},
		{&e.Label, []string{"label", "l"}, false},
		{&e.Type, []string{"type", "t"}, false},
		{&e.From, []string{"from", "a"}, true},
		{&e.To, []string{"to", "b"}, true},
	}
	for _, f := range fields {
		key, raw := pick(m, f.names...)
		if raw == nil {
			if f.required {
				return EdgeSpec{}, invalid(path+"."+f.names[0], "field required")
			}
			continue
		}
		s, err := str(raw, path+"."+key)
		if err != nil {
			return EdgeSpec{}, err
		}
		*f.dst = s
	}

	var err error
	if e.Properties, err = properties(m["properties"], path+".properties"); err != nil {
		return EdgeSpec{}, err
	}
	return e, nil
}

func properties(v any, path string) (props.Properties, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalid(path, "must be an object, got %s", typeName(v))
	}
	p, err := props.Flatten(m)
	if err != nil {
		return nil, invalid(path, "%v", err)
	}
	return p, nil
}

// pick returns the first alias present in m and its value. When none is
// present the first alias is returned with a nil value.
func pick(m map[string]any, names ...string) (string, any) {
	for _, name := range names {
		if v, ok := m[name]; ok && v != nil {
			return name, v
		}
	}
	return names[0], nil
}

// str accepts strings and numbers; numbers keep their written form.
func str(v any, path string) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", invalid(path, "must be a string, got %s", typeName(v))
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	default:
		return "number"
	}
}

func invalid(path, format string, args ...any) *errors.Error {
	msg := fmt.Sprintf(format, args...)
	if path != "" {
		msg = path + ": " + msg
	}
	return errors.New(errors.ErrCodeInvalidInput, "%s", msg)
}

package graph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/io"
	"github.com/matzehuels/graphloom/pkg/props"
)

func decode(t *testing.T, doc string) any {
	t.Helper()
	v, err := io.Decode([]byte(doc), io.FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func TestFromMapShortForms(t *testing.T) {
	v := decode(t, `
nodes:
  - A
  - l: Site B
    t: DataCenter
    id: site-b
    nodes: [B1]
    links:
      - from: B1
        to: B2
        l: uplink
        properties:
          edge:
            thickness: 3
links:
  - "A:eth0 -> Site B:eth1"
  - {a: A, b: B, t: fiber, name: backbone}
`)
	g, err := FromMap(v)
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}

	if len(g.Nodes) != 2 {
		t.Fatalf("len(Nodes) = %d, want 2", len(g.Nodes))
	}
	if g.Nodes[0].Name != "A" {
		t.Errorf("Nodes[0].Name = %q, want A", g.Nodes[0].Name)
	}
	b := g.Nodes[1]
	if b.Name != "Site B" || b.Type != "DataCenter" || b.ID != "site-b" {
		t.Errorf("Nodes[1] = %+v, want name/type/id from aliases", b)
	}
	if len(b.Nodes) != 1 || b.Nodes[0].Name != "B1" {
		t.Errorf("Nodes[1].Nodes = %+v, want [B1]", b.Nodes)
	}
	if len(b.Edges) != 1 || b.Edges[0].Label != "uplink" {
		t.Fatalf("Nodes[1].Edges = %+v, want one labelled edge", b.Edges)
	}
	if v, ok := b.Edges[0].Properties["edge.thickness"].Int(); !ok || v != 3 {
		t.Errorf("edge properties = %v, want flattened edge.thickness 3", b.Edges[0].Properties)
	}

	if len(g.Edges) != 2 {
		t.Fatalf("len(Edges) = %d, want 2", len(g.Edges))
	}
	if e := g.Edges[0]; e.From != "A:eth0" || e.To != "Site B:eth1" {
		t.Errorf("shorthand edge = %s -> %s, want A:eth0 -> Site B:eth1", e.From, e.To)
	}
	if e := g.Edges[1]; e.From != "A" || e.To != "B" || e.Type != "fiber" || e.Name != "backbone" {
		t.Errorf("aliased edge = %+v", e)
	}
}

func TestFromMapErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"not object", `[A, B]`, "graph must be an object, got list"},
		{"missing nodes", `edges: []`, "nodes: field required"},
		{"nodes not list", `nodes: A`, "nodes: must be a list, got string"},
		{"node without name", `nodes: [{type: router}]`, "nodes[0].name: field required"},
		{"node number", `nodes: [true]`, "nodes[0]: node must be a string or an object, got boolean"},
		{"bad shorthand", `{nodes: [A], edges: ["A => B"]}`,
			"edges[0]: Invalid link shorthand 'A => B'. Expected format: 'Source[:Port] -> Target[:Port]'"},
		{"empty side", `{nodes: [A], links: ["A -> "]}`,
			"links[0]: Invalid link shorthand 'A -> '. Both source and target must be present."},
		{"edge without to", `{nodes: [A], edges: [{from: A}]}`, "edges[0].to: field required"},
		{"bad properties", `{nodes: [{name: A, properties: [1]}]}`, "nodes[0].properties: must be an object, got list"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap(decode(t, tt.doc))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("FromMap error = %v, want INVALID_INPUT", err)
			}
			if got := errors.UserMessage(err); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromMapNumbersAsNames(t *testing.T) {
	g, err := FromMap(decode(t, `{nodes: [{name: 101}], edges: [{from: 101, to: 102}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if g.Nodes[0].Name != "101" || g.Edges[0].To != "102" {
		t.Errorf("graph = %+v, want numeric names as strings", g)
	}
}

func TestValidate(t *testing.T) {
	long := strings.Repeat("x", 21)
	tests := []struct {
		name string
		g    Graph
		want string
	}{
		{
			name: "node name too long",
			g:    Graph{Nodes: []NodeSpec{{Name: long}}},
			want: "nodes[0].name: Node name must be between 1 and 20 characters.",
		},
		{
			name: "empty node name",
			g:    Graph{Nodes: []NodeSpec{{Name: ""}}},
			want: "nodes[0].name: Node name must be between 1 and 20 characters.",
		},
		{
			name: "colon in node name",
			g:    Graph{Nodes: []NodeSpec{{Name: "a:b"}}},
			want: "nodes[0].name: Node name cannot contain ':' because edge endpoints use 'node:port' syntax.",
		},
		{
			name: "port too long",
			g: Graph{Nodes: []NodeSpec{{Name: "A"}}, Edges: []EdgeSpec{
				{From: "A:" + strings.Repeat("p", 16), To: "A"},
			}},
			want: "edges[0].from: Port name must be between 1 and 15 characters.",
		},
		{
			name: "colon in port",
			g:    Graph{Edges: []EdgeSpec{{From: "A", To: "B:x:y"}}, Nodes: []NodeSpec{}},
			want: "edges[0].to: Port name cannot contain ':' because edge endpoints use 'node:port' syntax.",
		},
		{
			name: "empty port",
			g:    Graph{Nodes: []NodeSpec{}, Edges: []EdgeSpec{{From: "A:", To: "B"}}},
			want: "edges[0].from: Port name must be between 1 and 15 characters.",
		},
		{
			name: "edge label too long",
			g:    Graph{Nodes: []NodeSpec{}, Edges: []EdgeSpec{{From: "A", To: "B", Label: strings.Repeat("l", 41)}}},
			want: "edges[0].label: Edge name must be between 1 and 40 characters.",
		},
		{
			name: "nested path",
			g: Graph{Nodes: []NodeSpec{{Name: "S", Edges: []EdgeSpec{
				{From: "a", To: long},
			}}}},
			want: "nodes[0].edges[0].to: Node name must be between 1 and 20 characters.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.g)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("Validate error = %v, want INVALID_INPUT", err)
			}
			if got := errors.UserMessage(err); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	g := &Graph{Nodes: []NodeSpec{{Name: "a:b"}, {Name: ""}}}
	err := Validate(g)
	if err == nil {
		t.Fatal("Validate succeeded, want error")
	}
	if lines := strings.Split(errors.UserMessage(err), "\n"); len(lines) != 2 {
		t.Errorf("got %d messages, want 2: %q", len(lines), lines)
	}
}

func TestValidateAccepts(t *testing.T) {
	g := &Graph{
		Nodes: []NodeSpec{{Name: "Core Router 1"}, {Name: strings.Repeat("n", 20)}},
		Edges: []EdgeSpec{{From: " Core Router 1 : xe-0/0/0 ", To: "Edge", Name: strings.Repeat("e", 40)}},
	}
	if err := Validate(g); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}

func TestValidateDepth(t *testing.T) {
	root := NodeSpec{Name: "leaf"}
	for i := 0; i < MaxDepth; i++ {
		root = NodeSpec{Name: "n", Nodes: []NodeSpec{root}}
	}
	err := Validate(&Graph{Nodes: []NodeSpec{root}})
	if !errors.Is(err, errors.ErrCodeInvalidInput) || !strings.Contains(err.Error(), "exceeds the maximum of 64") {
		t.Errorf("Validate = %v, want depth error", err)
	}
}

func TestStats(t *testing.T) {
	g := &Graph{
		Nodes: []NodeSpec{
			{Name: "A"},
			{Name: "S", Nodes: []NodeSpec{{Name: "B"}, {Name: "C"}}, Edges: []EdgeSpec{{From: "B", To: "C"}}},
		},
		Edges: []EdgeSpec{{From: "A", To: "S"}},
	}
	want := Stats{Nodes: 4, Subgraphs: 1, Edges: 2, Depth: 2}
	if got := g.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.jsonc")
	doc := `{
  // two routers
  "nodes": ["A", "B"],
  "links": ["A:eth0 -> B:eth1"],
}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Errorf("graph = %+v, want 2 nodes and 1 edge", g)
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`{"nodes": ["a:b"]}`), 0o644)
	if _, err := ReadFile(bad); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ReadFile(bad) = %v, want INVALID_INPUT", err)
	}
}

func TestParseProperties(t *testing.T) {
	g, err := Parse([]byte(`{"nodes": [{"name": "A", "properties": {"nodeLabels": {"placement": ["INSIDE", "H_CENTER"]}}}]}`), io.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	got := g.Nodes[0].Properties["nodeLabels.placement"]
	if !got.Equal(props.StringList("INSIDE", "H_CENTER")) {
		t.Errorf("properties = %v, want flattened list", g.Nodes[0].Properties)
	}
}

func TestFromMapIgnoresUnknownFields(t *testing.T) {
	g, err := FromMap(decode(t, `
title: lab
nodes:
  - name: A
    color: red
edges:
  - {from: A, to: B, weight: 3}
`))
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if len(g.Nodes) != 1 || g.Nodes[0].Name != "A" {
		t.Errorf("nodes = %+v", g.Nodes)
	}
	if len(g.Edges) != 1 || g.Edges[0].From != "A" || g.Edges[0].To != "B" {
		t.Errorf("edges = %+v", g.Edges)
	}
}

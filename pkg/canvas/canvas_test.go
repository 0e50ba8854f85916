package canvas

import (
	"strings"
	"testing"

	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/props"
)

func size(f float64) *float64 { return &f }

func leaf(id string, ports ...string) *Node {
	n := &Node{ID: id, Type: "default", Width: size(60), Height: size(60)}
	for i, p := range ports {
		n.Ports = append(n.Ports, Port{ID: p, Properties: props.Properties{props.KeyPortIndex: props.Int(int64(i))}})
	}
	return n
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		c    *Canvas
		want string
	}{
		{
			name: "valid",
			c: &Canvas{ID: RootID, Children: []*Node{
				leaf("a", "a_p1", "a_p2"),
				{ID: "s", Type: TypeSubgraph, Children: []*Node{leaf("a")}},
			}, Edges: []*Edge{{ID: "e"}, {ID: "e_2"}}},
		},
		{
			name: "empty root id",
			c:    &Canvas{},
			want: "canvas id is empty",
		},
		{
			name: "duplicate child",
			c:    &Canvas{ID: RootID, Children: []*Node{leaf("a"), leaf("a")}},
			want: `canvas: child ids must be unique, "a" repeats`,
		},
		{
			name: "duplicate edge in subgraph",
			c: &Canvas{ID: RootID, Children: []*Node{{ID: "s", Children: []*Node{leaf("x")},
				Edges: []*Edge{{ID: "e"}, {ID: "e"}}}}},
			want: `canvas/s: edge ids must be unique, "e" repeats`,
		},
		{
			name: "sized subgraph",
			c:    &Canvas{ID: RootID, Children: []*Node{{ID: "s", Width: size(1), Children: []*Node{leaf("x")}}}},
			want: "canvas/s: subgraph nodes must not define width or height",
		},
		{
			name: "unsized leaf",
			c:    &Canvas{ID: RootID, Children: []*Node{{ID: "a", Width: size(1)}}},
			want: "canvas/a: leaf nodes must define both width and height",
		},
		{
			name: "port gap",
			c: &Canvas{ID: RootID, Children: []*Node{{ID: "a", Width: size(1), Height: size(1), Ports: []Port{
				{ID: "p", Properties: props.Properties{props.KeyPortIndex: props.Int(1)}},
			}}}},
			want: `canvas/a: port "p" has index 1, want 0`,
		},
		{
			name: "port without index",
			c:    &Canvas{ID: RootID, Children: []*Node{{ID: "a", Width: size(1), Height: size(1), Ports: []Port{{ID: "p"}}}}},
			want: `canvas/a: port "p" has index <missing>, want 0`,
		},
		{
			name: "duplicate port",
			c:    &Canvas{ID: RootID, Children: []*Node{leaf("a", "p", "p")}},
			want: `canvas/a: port ids must be unique, "p" repeats`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.c)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Validate = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, errors.ErrCodeInvalidCanvas) {
				t.Fatalf("Validate = %v, want INVALID_CANVAS", err)
			}
			if got := errors.UserMessage(err); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatsAndWalk(t *testing.T) {
	c := &Canvas{ID: RootID,
		Children: []*Node{
			leaf("a", "a_p"),
			{ID: "s", Type: TypeSubgraph, Children: []*Node{leaf("b"), leaf("c", "c_1", "c_2")}, Edges: []*Edge{{ID: "bc"}}},
		},
		Edges: []*Edge{{ID: "as"}},
	}
	want := Stats{Nodes: 4, Subgraphs: 1, Ports: 3, Edges: 2, Depth: 2}
	if got := c.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}

	var order []string
	Walk(c, func(n *Node, depth int) { order = append(order, strings.Repeat(">", depth)+n.ID) })
	if got := strings.Join(order, " "); got != ">a >s >>b >>c" {
		t.Errorf("Walk order = %q", got)
	}

	if n := c.Find("c"); n == nil || len(n.Ports) != 2 {
		t.Errorf("Find(c) = %+v", n)
	}
	if c.Find("missing") != nil {
		t.Error("Find(missing) returned a node")
	}
}

func TestNodeText(t *testing.T) {
	n := &Node{ID: "a"}
	if n.Text() != "a" {
		t.Errorf("Text() = %q, want id fallback", n.Text())
	}
	n.Labels = []Label{{Text: "Router A"}}
	if n.Text() != "Router A" {
		t.Errorf("Text() = %q, want label", n.Text())
	}
}

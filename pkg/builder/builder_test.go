package builder

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/graphloom/pkg/canvas"
	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/graph"
	"github.com/matzehuels/graphloom/pkg/props"
	"github.com/matzehuels/graphloom/pkg/settings"
)

func fixedID() string { return "edge_0000abcd" }

func mustLoad(t *testing.T, doc string) *graph.Graph {
	t.Helper()
	var v any
	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	g, err := graph.Load(v)
	if err != nil {
		t.Fatalf("graph.Load: %v", err)
	}
	return g
}

func mustBuild(t *testing.T, doc string, s *settings.Settings, opts ...Option) *canvas.Canvas {
	t.Helper()
	opts = append([]Option{WithIDGenerator(fixedID)}, opts...)
	c, err := Build(mustLoad(t, doc), s, opts...)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return c
}

func childIDs(nodes []*canvas.Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}

func edgeIDList(edges []*canvas.Edge) []string {
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}
	return ids
}

func TestPortsFromShorthand(t *testing.T) {
	c := mustBuild(t, `{"nodes": ["A", "B"], "links": ["A:eth0 -> B:eth1"]}`, nil)

	if got := fmt.Sprint(childIDs(c.Children)); got != "[a b]" {
		t.Fatalf("children = %s, want [a b]", got)
	}
	a, b := c.Children[0], c.Children[1]
	if a.IsSubgraph() || a.Width == nil || a.Height == nil {
		t.Errorf("a should be a sized leaf: %+v", a)
	}
	if len(a.Ports) != 1 || a.Ports[0].ID != "a_eth0" {
		t.Fatalf("a ports = %+v, want [a_eth0]", a.Ports)
	}
	if len(b.Ports) != 1 || b.Ports[0].ID != "b_eth1" {
		t.Fatalf("b ports = %+v, want [b_eth1]", b.Ports)
	}
	if got := a.Ports[0].Labels[0].Text; got != "eth0" {
		t.Errorf("port label = %q, want eth0", got)
	}
	if len(c.Edges) != 1 {
		t.Fatalf("edges = %d, want 1", len(c.Edges))
	}
	e := c.Edges[0]
	if fmt.Sprint(e.Sources) != "[a_eth0]" || fmt.Sprint(e.Targets) != "[b_eth1]" {
		t.Errorf("edge = %v -> %v, want [a_eth0] -> [b_eth1]", e.Sources, e.Targets)
	}
	if e.ID != "edge_0000abcd" {
		t.Errorf("edge id = %q, want generated id", e.ID)
	}
}

func TestSubgraphFromNestedNodes(t *testing.T) {
	c := mustBuild(t, `{"nodes": [{"name": "Cluster", "nodes": ["A", "B"]}]}`, nil)

	if len(c.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(c.Children))
	}
	cluster := c.Children[0]
	if cluster.ID != "cluster" || cluster.Type != canvas.TypeSubgraph {
		t.Errorf("cluster = %s/%s, want cluster/subgraph", cluster.ID, cluster.Type)
	}
	if cluster.Width != nil || cluster.Height != nil {
		t.Error("subgraph carries geometry")
	}
	if got := cluster.Labels[0].Text; got != "Cluster" {
		t.Errorf("cluster label = %q, want Cluster", got)
	}
	if p, _ := cluster.Properties["org.eclipse.elk.nodeLabels.placement"].Str(); p != "[INSIDE, V_TOP, H_CENTER]" {
		t.Errorf("cluster label placement = %q, want subgraph defaults", p)
	}
	if got := fmt.Sprint(childIDs(cluster.Children)); got != "[a b]" {
		t.Errorf("cluster children = %s, want [a b]", got)
	}
	for _, child := range cluster.Children {
		if child.Type != "default" || child.Width == nil || *child.Width != 60 || *child.Height != 60 {
			t.Errorf("child %s = %s %v, want default 60x60 leaf", child.ID, child.Type, child.Width)
		}
	}
}

func TestDuplicateNodeID(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"sanitized collision", `{"nodes": ["Node 1", "Node-1"]}`, "Duplicate node id 'node_1' derived from 'Node-1'"},
		{"override collision", `{"nodes": ["A", {"name": "Other", "id": "a"}]}`, "Duplicate node id 'a' derived from 'a'"},
		{"nested scope", `{"nodes": [{"name": "S", "nodes": ["x y", "X-Y"]}]}`, "Duplicate node id 'x_y' derived from 'X-Y'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(mustLoad(t, tt.doc), nil)
			var dup *errors.DuplicateIDError
			if !stderrors.As(err, &dup) {
				t.Fatalf("Build error = %v, want DuplicateIDError", err)
			}
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err.Error(), tt.want)
			}
			if !errors.Is(err, errors.ErrCodeDuplicateID) {
				t.Errorf("code = %q, want DUPLICATE_ID", errors.GetCode(err))
			}
		})
	}
}

func TestSameNameInDifferentScopes(t *testing.T) {
	c := mustBuild(t, `{"nodes": ["A", {"name": "S", "nodes": ["A"]}]}`, nil)
	if got := c.Children[1].Children[0].ID; got != "a" {
		t.Errorf("nested id = %q, want a", got)
	}
}

func TestUnknownNodeWithoutAutoCreate(t *testing.T) {
	s := settings.Sample()
	s.AutoCreateMissingNodes = false

	_, err := Build(mustLoad(t, `{"nodes": ["A"], "edges": ["A -> B"]}`), s)
	var unknown *errors.UnknownNodeError
	if !stderrors.As(err, &unknown) {
		t.Fatalf("Build error = %v, want UnknownNodeError", err)
	}
	if unknown.Token != "B" {
		t.Errorf("token = %q, want B", unknown.Token)
	}
	if err.Error() != "Unknown node 'B' referenced by edge" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestAutoCreate(t *testing.T) {
	c := mustBuild(t, `{"nodes": ["A"], "edges": [{"from": "A", "to": "New Host:ge-0/0/1"}]}`, nil)

	if got := fmt.Sprint(childIDs(c.Children)); got != "[a new_host]" {
		t.Fatalf("children = %s, want [a new_host]", got)
	}
	created := c.Children[1]
	if created.Labels[0].Text != "New Host" || created.Type != "default" {
		t.Errorf("auto-created node = %q/%s, want New Host/default", created.Labels[0].Text, created.Type)
	}
	if len(created.Ports) != 1 || created.Ports[0].ID != "new_host_ge_0_0_1" {
		t.Errorf("ports = %+v, want [new_host_ge_0_0_1]", created.Ports)
	}
	if created.Ports[0].Labels[0].Text != "ge-0/0/1" {
		t.Errorf("port label = %q, want ge-0/0/1", created.Ports[0].Labels[0].Text)
	}
}

func TestAutoCreateInsideSubgraph(t *testing.T) {
	c := mustBuild(t, `{"nodes": [{"name": "S", "links": ["p -> q"]}]}`, nil)
	s := c.Children[0]
	if !s.IsSubgraph() || s.Width != nil {
		t.Fatalf("S should be a subgraph without geometry: %+v", s)
	}
	if got := fmt.Sprint(childIDs(s.Children)); got != "[p q]" {
		t.Errorf("S children = %s, want [p q]", got)
	}
	if len(c.Edges) != 0 || len(s.Edges) != 1 {
		t.Errorf("edges root=%d S=%d, want 0 and 1", len(c.Edges), len(s.Edges))
	}
}

func TestAliases(t *testing.T) {
	doc := `{
		"nodes": ["Core Router 1", "Core Switch 1", {"name": "Edge Router", "id": "er-1"}],
		"edges": [
			{"from": "core 1", "to": "edge", "name": "e1"},
			{"from": "CORE_SWITCH_1", "to": "er-1", "name": "e2"},
			{"from": "Edge Router", "to": "core-router-1", "name": "e3"}
		]
	}`
	c := mustBuild(t, doc, nil)

	if got := fmt.Sprint(childIDs(c.Children)); got != "[core_router_1 core_switch_1 er_1]" {
		t.Fatalf("children = %s", got)
	}
	want := [][2]string{
		{"core_router_1", "er_1"},
		{"core_switch_1", "er_1"},
		{"er_1", "core_router_1"},
	}
	for i, e := range c.Edges {
		if e.Sources[0] != want[i][0] || e.Targets[0] != want[i][1] {
			t.Errorf("edge %s = %s -> %s, want %s -> %s", e.ID, e.Sources[0], e.Targets[0], want[i][0], want[i][1])
		}
	}
}

func TestPortIndexOrder(t *testing.T) {
	doc := `{"nodes": ["A", "B", "C"], "edges": [
		{"from": "A:p1", "to": "B", "name": "x"},
		{"from": "C", "to": "A:p2", "name": "y"},
		{"from": "A: P1 ", "to": "B:p1", "name": "z"},
		{"from": "A:p3", "to": "C", "name": "w"}
	]}`
	c := mustBuild(t, doc, nil)
	a := c.Children[0]

	wantIDs := []string{"a_p1", "a_p2", "a_p3"}
	if len(a.Ports) != len(wantIDs) {
		t.Fatalf("a ports = %d, want %d", len(a.Ports), len(wantIDs))
	}
	for i, p := range a.Ports {
		if p.ID != wantIDs[i] {
			t.Errorf("port %d id = %q, want %q", i, p.ID, wantIDs[i])
		}
		if idx, ok := p.Index(); !ok || idx != i {
			t.Errorf("port %s index = %d, want %d", p.ID, idx, i)
		}
	}
	if got := a.Ports[0].Labels[0].Text; got != "p1" {
		t.Errorf("port label = %q, want first spelling p1", got)
	}
	if got := c.Edges[2].Sources[0]; got != "a_p1" {
		t.Errorf("edge z source = %q, want a_p1", got)
	}
}

func TestEdgeIDs(t *testing.T) {
	tests := []struct {
		name  string
		edges string
		want  string
	}{
		{"duplicate names", `[{"from": "A", "to": "B", "name": "dup"}, {"from": "B", "to": "A", "name": "dup"}]`, "[dup dup_2]"},
		{"suffix already used", `[
			{"from": "A", "to": "B", "name": "dup"},
			{"from": "A", "to": "B", "name": "dup_2"},
			{"from": "A", "to": "B", "name": "dup"}]`, "[dup dup_2 dup_3]"},
		{"id beats label beats name", `[
			{"from": "A", "to": "B", "id": "Link-1", "label": "L", "name": "N"},
			{"from": "A", "to": "B", "label": "Uplink A", "name": "N"},
			{"from": "A", "to": "B", "name": "Backup"}]`, "[link_1 uplink_a backup]"},
		{"generated", `["A -> B", "B -> A"]`, "[edge_0000abcd edge_0000abcd_2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustBuild(t, `{"nodes": ["A", "B"], "edges": `+tt.edges+`}`, nil)
			if got := fmt.Sprint(edgeIDList(c.Edges)); got != tt.want {
				t.Errorf("edge ids = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEdgeLabelsAndTypes(t *testing.T) {
	s := settings.Sample()
	s.EdgeTypeOverrides = map[string]settings.EdgeDefaults{
		"fiber": {
			Label:      settings.LabelDefaults{Text: "fiber", Width: 50, Height: 8},
			Properties: props.Properties{"edge.thickness": props.Int(4)},
		},
	}
	s.EstimateLabelSizeFromFont = false
	doc := `{"nodes": ["A", "B"], "edges": [
		{"from": "A", "to": "B", "label": "L", "name": "N"},
		{"from": "A", "to": "B", "name": "N"},
		{"from": "A", "to": "B", "type": " Fiber "},
		{"from": "A", "to": "B", "type": "copper", "properties": {"edge.thickness": 7}}
	]}`
	c := mustBuild(t, doc, s)

	wantText := []string{"L", "N", "fiber", ""}
	for i, e := range c.Edges {
		if got := e.Labels[0].Text; got != wantText[i] {
			t.Errorf("edge %d label = %q, want %q", i, got, wantText[i])
		}
	}

	fiber := c.Edges[2]
	if v, _ := fiber.Properties[props.KeyEdgeThickness].Int(); v != 4 {
		t.Errorf("fiber thickness = %v, want 4 from override", fiber.Properties[props.KeyEdgeThickness])
	}
	if v, _ := fiber.Properties[KeyEdgeType].Str(); v != " Fiber " {
		t.Errorf("fiber edge type = %q, want literal tag", v)
	}
	if fiber.Labels[0].Width != 50 {
		t.Errorf("fiber label width = %v, want 50", fiber.Labels[0].Width)
	}

	copper := c.Edges[3]
	if v, _ := copper.Properties[props.KeyEdgeThickness].Int(); v != 7 {
		t.Errorf("copper thickness = %v, want explicit 7", copper.Properties[props.KeyEdgeThickness])
	}
	if v, _ := copper.Properties["org.eclipse.elk.edge.type"].Str(); v != "UNDIRECTED" {
		t.Errorf("copper edge.type = %q, want UNDIRECTED from defaults", v)
	}
	if _, ok := c.Edges[0].Properties[KeyEdgeType]; ok {
		t.Error("untyped edge carries an edge type property")
	}
}

func TestNodeTypesAndIcons(t *testing.T) {
	s := settings.Sample()
	fw := settings.Sample().NodeDefaults
	fw.Type = "firewall"
	fw.Width = settings.Float(90)
	fw.Height = nil
	s.TypeOverrides = map[string]settings.NodeDefaults{"Firewall": fw}

	c := mustBuild(t, `{"nodes": [
		{"name": "FW", "type": "FireWall"},
		{"name": "R1", "type": "Router"},
		{"name": "X", "type": "Mystery"}
	]}`, s)

	fwNode, r1, x := c.Children[0], c.Children[1], c.Children[2]
	if fwNode.Type != "firewall" || fwNode.Icon != "clarity:firewall-line" {
		t.Errorf("FW = %s/%s, want firewall/clarity:firewall-line", fwNode.Type, fwNode.Icon)
	}
	if *fwNode.Width != 90 || *fwNode.Height != 60 {
		t.Errorf("FW size = %vx%v, want 90x60", *fwNode.Width, *fwNode.Height)
	}
	if r1.Type != "router" || r1.Icon != "mdi:router" {
		t.Errorf("R1 = %s/%s, want router/mdi:router", r1.Type, r1.Icon)
	}
	if x.Icon != "" {
		t.Errorf("X icon = %q, want none", x.Icon)
	}
}

func TestExplicitNodeProperties(t *testing.T) {
	c := mustBuild(t, `{"nodes": [{"name": "A", "properties": {"portConstraints": "FIXED_ORDER", "custom.flag": true}}]}`, nil)
	p := c.Children[0].Properties
	if v, _ := p["org.eclipse.elk.portConstraints"].Str(); v != "FIXED_ORDER" {
		t.Errorf("portConstraints = %q, want explicit FIXED_ORDER", v)
	}
	if _, ok := p["portConstraints"]; ok {
		t.Error("short key kept next to long key")
	}
	if v, _ := p["custom.flag"].Bool(); !v {
		t.Error("unknown explicit key dropped")
	}
	if v, _ := p["org.eclipse.elk.portLabels.treatAsGroup"].Bool(); !v {
		t.Error("default property lost in merge")
	}
}

func TestLabelEstimation(t *testing.T) {
	doc := `{"nodes": ["A"], "edges": ["A:eth0 -> A:eth1"]}`

	on := mustBuild(t, doc, nil)
	port := on.Children[0].Ports[0].Labels[0]
	if port.Width < 8.79 || port.Width > 8.81 || port.Height < 4.79 || port.Height > 4.81 {
		t.Errorf("estimated port label = %vx%v, want 8.8x4.8", port.Width, port.Height)
	}
	if w := on.Children[0].Labels[0].Width; w != 150 {
		t.Errorf("node label width = %v, want default 150", w)
	}

	s := settings.Sample()
	s.EstimateLabelSizeFromFont = false
	off := mustBuild(t, doc, s)
	port = off.Children[0].Ports[0].Labels[0]
	if port.Width != 0 || port.Height != 2 {
		t.Errorf("default port label = %vx%v, want 0x2", port.Width, port.Height)
	}
}

func TestUnknownLayoutOption(t *testing.T) {
	s := settings.Sample()
	s.LayoutOptions["spacing.nodeNode"] = props.Int(10)
	_, err := Build(mustLoad(t, `{"nodes": ["A"]}`), s)
	if !errors.Is(err, errors.ErrCodeUnknownLayoutOption) {
		t.Fatalf("Build error = %v, want UNKNOWN_LAYOUT_OPTION", err)
	}
	if err.Error() != "Unknown layout option identifiers: spacing.nodeNode" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestCanvasRoot(t *testing.T) {
	c := mustBuild(t, `{"nodes": []}`, nil)
	if c.ID != "canvas" {
		t.Errorf("ID = %q, want canvas", c.ID)
	}
	if !c.LayoutOptions.Equal(settings.Sample().LayoutOptions) {
		t.Errorf("layout options = %v, want sample options", c.LayoutOptions)
	}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"children":[]`) || !strings.Contains(string(data), `"edges":[]`) {
		t.Errorf("empty canvas JSON = %s, want [] for children and edges", data)
	}
}

func TestNilGraph(t *testing.T) {
	if _, err := New(nil).Build(nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Build(nil) = %v, want INVALID_INPUT", err)
	}
}

func TestJSONShape(t *testing.T) {
	c := mustBuild(t, `{"nodes": ["A", {"name": "S", "nodes": ["B"]}]}`, nil)
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Children []map[string]json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	leaf, sub := doc.Children[0], doc.Children[1]
	if _, ok := leaf["width"]; !ok {
		t.Error("leaf JSON lacks width")
	}
	if _, ok := sub["width"]; ok {
		t.Error("subgraph JSON has width")
	}
	if string(leaf["ports"]) != "[]" || string(leaf["children"]) != "[]" || string(leaf["edges"]) != "[]" {
		t.Errorf("leaf lists = %s %s %s, want []", leaf["ports"], leaf["children"], leaf["edges"])
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	var b strings.Builder
	b.WriteString(`{"nodes": [`)
	for i := range 12 {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"name": "Site %d", "nodes": ["R1", {"name": "Rack", "nodes": ["S1", "S2"], "links": ["S1:a -> S2:b"]}], "links": ["R1:up -> Rack"]}`, i)
	}
	b.WriteString(`], "links": ["Site 0 -> Site 1", "Site 1:x -> Site 2:y"]}`)
	doc := b.String()

	serial := mustBuild(t, doc, nil)
	parallel := mustBuild(t, doc, nil, WithParallel(true))

	sj, _ := json.Marshal(serial)
	pj, _ := json.Marshal(parallel)
	if string(sj) != string(pj) {
		t.Error("parallel build differs from serial build")
	}
}

func TestParallelReportsFirstError(t *testing.T) {
	doc := `{"nodes": [
		"A",
		{"name": "S1", "nodes": ["x", "X"]},
		{"name": "S2", "nodes": ["y", "Y"]}
	]}`
	for range 20 {
		_, err := Build(mustLoad(t, doc), nil, WithParallel(true))
		var dup *errors.DuplicateIDError
		if !stderrors.As(err, &dup) || dup.ID != "x" {
			t.Fatalf("Build error = %v, want duplicate x", err)
		}
	}
}

func TestBuilderReusable(t *testing.T) {
	res, err := settings.Resolve(nil)
	if err != nil {
		t.Fatal(err)
	}
	b := New(res, WithIDGenerator(fixedID))
	g := mustLoad(t, `{"nodes": ["A", "B"], "links": ["A -> B"]}`)
	first, err := b.Build(g)
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Build(g)
	if err != nil {
		t.Fatal(err)
	}
	fj, _ := json.Marshal(first)
	sj, _ := json.Marshal(second)
	if string(fj) != string(sj) {
		t.Error("second build differs")
	}
	if err := canvas.Validate(first); err != nil {
		t.Errorf("Validate = %v", err)
	}
}

func TestGeneratedEdgeIDsDeterministic(t *testing.T) {
	doc := `{"nodes": ["A", "B", {"name": "Rack", "nodes": ["C", "D"], "edges": ["C:eth0 -> D:eth0"]}],
		"edges": ["A:eth0 -> B:eth1", "A:eth0 -> B:eth1", "B -> A"]}`

	first, err := Build(mustLoad(t, doc), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	second, err := Build(mustLoad(t, doc), nil, WithParallel(true))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	fj, _ := json.Marshal(first)
	sj, _ := json.Marshal(second)
	if string(fj) != string(sj) {
		t.Fatalf("same input built different canvases:\n%s\n%s", fj, sj)
	}

	ids := edgeIDList(first.Edges)
	ids = append(ids, edgeIDList(first.Children[2].Edges)...)
	seen := make(map[string]bool)
	for _, id := range ids {
		if len(id) != len("edge_")+8 || !strings.HasPrefix(id, "edge_") {
			t.Errorf("edge id %q, want edge_<8 hex>", id)
		}
		if seen[id] {
			t.Errorf("edge id %q generated twice", id)
		}
		seen[id] = true
	}
}

func TestExplicitEdgeIDsSuffixed(t *testing.T) {
	c := mustBuild(t, `{"nodes": ["A", "B"], "edges": [
		{"from": "A", "to": "B", "id": "x"},
		{"from": "B", "to": "A", "id": "x"}]}`, nil)
	if got := fmt.Sprint(edgeIDList(c.Edges)); got != "[x x_2]" {
		t.Errorf("edge ids = %s, want [x x_2]", got)
	}
}

func TestNewNilResolverUsesSample(t *testing.T) {
	c, err := New(nil).Build(mustLoad(t, `{"nodes": ["A"]}`))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want, err := settings.Resolve(settings.Sample())
	if err != nil {
		t.Fatalf("Resolve(Sample()): %v", err)
	}
	if fmt.Sprint(c.LayoutOptions) != fmt.Sprint(want.LayoutOptions()) {
		t.Errorf("LayoutOptions = %v, want %v", c.LayoutOptions, want.LayoutOptions())
	}
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphloom/pkg/profile"
	"github.com/matzehuels/graphloom/pkg/settings"
)

const testGraphYAML = `nodes:
  - A
  - B
  - name: Rack
    nodes: [C]
edges:
  - "A:eth0 -> B:eth1"
`

// execute runs the CLI with args and returns what commands wrote to their
// output writer.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.SetOutput(&out)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"build", "render", "settings", "options", "inspect", "serve", "profile", "cache", "completion", "version"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "graphloom ") || !strings.Contains(out, "commit:") {
		t.Errorf("version output = %q", out)
	}
}

func TestBuildToStdout(t *testing.T) {
	input := writeFile(t, t.TempDir(), "net.yaml", testGraphYAML)
	out, err := execute(t, "build", input, "--no-cache")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if doc["id"] != "canvas" {
		t.Errorf("id = %v, want canvas", doc["id"])
	}
	if children, _ := doc["children"].([]any); len(children) != 3 {
		t.Errorf("children = %d, want 3", len(children))
	}
}

func TestBuildManyInputs(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "site-a.yaml", testGraphYAML)
	b := writeFile(t, dir, "site-b.json", `{"nodes": ["X", "Y"], "edges": ["X -> Y"]}`)
	outDir := filepath.Join(dir, "out")

	if _, err := execute(t, "build", a, b, "-o", outDir, "--no-cache", "--parallel"); err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, name := range []string{"site-a.elk.json", "site-b.elk.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "net.yaml", testGraphYAML)
	dup := filepath.Join(t.TempDir(), "net.json")
	if err := os.WriteFile(dup, []byte(`{"nodes": ["Q"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	unknown := writeFile(t, dir, "unknown.yaml", "nodes: [A]\nedges: [\"A -> Z\"]\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing input", []string{"build", filepath.Join(dir, "nope.yaml")}, "not found"},
		{"exclusive flags", []string{"build", input, "-s", "a.json", "--profile", "b.json"}, "none of the others"},
		{"same output name", []string{"build", input, dup, "-o", t.TempDir()}, "both write"},
		{"unknown node", []string{"build", unknown, "--no-auto-create", "--no-cache"}, "Unknown node 'Z'"},
		{"bad elkjs mode", []string{"build", input, "--layout", "--elkjs-mode", "bun", "--no-cache"}, "Unsupported elkjs mode 'bun'"},
		{"profile id without store", []string{"build", input, "--profile-id", "net"}, "no profile store"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestBuildWithSettingsAndTheme(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "net.yaml", testGraphYAML)

	sample, err := execute(t, "settings", "sample")
	if err != nil {
		t.Fatal(err)
	}
	settingsPath := writeFile(t, dir, "elk.json", sample)
	theme := writeFile(t, dir, "theme.json", `{"metrics": {"edge_thickness_px": 3}}`)

	out, err := execute(t, "build", input, "-s", settingsPath, "--theme", theme, "--no-cache")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(out, `"org.eclipse.elk.edge.thickness": 3`) {
		t.Errorf("theme edge thickness missing from output:\n%s", out)
	}
}

func TestSettingsCheck(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			sample, err := execute(t, "settings", "sample", "-f", format)
			if err != nil {
				t.Fatal(err)
			}
			path := writeFile(t, dir, "elk."+format, sample)
			if _, err := execute(t, "settings", "check", path); err != nil {
				t.Errorf("check %s: %v", format, err)
			}
		})
	}

	bad := writeFile(t, dir, "bad.json", `{"layout_options": {"org.eclipse.elk.notAnOption": 1}}`)
	if _, err := execute(t, "settings", "check", bad); err == nil {
		t.Error("expected error for unknown layout option")
	}
}

func TestOptionsPlain(t *testing.T) {
	out, err := execute(t, "options", "spacing", "--plain")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 0 || lines[0] == "" {
		t.Fatal("no options listed")
	}
	for _, line := range lines {
		id := strings.SplitN(line, "\t", 2)[0]
		if !strings.Contains(strings.ToLower(id), "spacing") {
			t.Errorf("option %q does not match filter", id)
		}
	}
}

func TestRenderDOT(t *testing.T) {
	input := writeFile(t, t.TempDir(), "net.yaml", testGraphYAML)
	out, err := execute(t, "render", input, "-f", "dot", "--no-cache")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "digraph G {") {
		t.Errorf("render output is not DOT:\n%s", out)
	}
	if !strings.Contains(out, "cluster_rack") {
		t.Errorf("subgraph cluster missing:\n%s", out)
	}
}

func TestRenderBadFormat(t *testing.T) {
	input := writeFile(t, t.TempDir(), "net.yaml", testGraphYAML)
	if _, err := execute(t, "render", input, "-f", "gif"); err == nil {
		t.Error("expected error for gif")
	}
}

func TestInspectPlain(t *testing.T) {
	input := writeFile(t, t.TempDir(), "net.yaml", testGraphYAML)
	out, err := execute(t, "inspect", input, "--plain")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Rack", "eth0", "4 nodes", "1 subgraph"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestProfileCommands(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "profiles")

	m, err := settings.Sample().ToMap()
	if err != nil {
		t.Fatal(err)
	}
	sum, err := profile.Checksum(m)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(map[string]any{
		profile.FieldID:       "net",
		profile.FieldVersion:  2,
		profile.FieldChecksum: sum,
		profile.FieldSettings: m,
	})
	if err != nil {
		t.Fatal(err)
	}
	bundle := writeFile(t, dir, "bundle.json", string(data))

	if _, err := execute(t, "profile", "resolve", bundle); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	out, err := execute(t, "profile", "resolve", bundle, "--print")
	if err != nil || !strings.Contains(out, "layout_options") {
		t.Fatalf("resolve --print = %q, %v", out, err)
	}

	if _, err := execute(t, "profile", "put", bundle, "--profile-store", store); err != nil {
		t.Fatalf("put: %v", err)
	}
	out, err = execute(t, "profile", "list", "--profile-store", store)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "net") {
		t.Errorf("list output missing profile:\n%s", out)
	}

	input := writeFile(t, dir, "net.yaml", testGraphYAML)
	out, err = execute(t, "build", input, "--profile-id", "net", "--profile-store", store, "--no-cache")
	if err != nil {
		t.Fatalf("build from store: %v", err)
	}
	if !strings.Contains(out, `"id": "canvas"`) {
		t.Errorf("build output:\n%s", out)
	}

	if _, err := execute(t, "profile", "list"); err == nil {
		t.Error("list without a store should fail")
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"net.yaml", "net.elk.json"},
		{"graphs/site-a.jsonc", "site-a.elk.json"},
		{"plain", "plain.elk.json"},
	}
	for _, tt := range tests {
		if got := outputName(tt.in); got != tt.want {
			t.Errorf("outputName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"out.png", "png"},
		{"out.PDF", "pdf"},
		{"out.gv", "svg"},
		{"out", "svg"},
	}
	for _, tt := range tests {
		if got := formatFromPath(tt.path, "svg"); got != tt.want {
			t.Errorf("formatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestExampleInputs(t *testing.T) {
	input := filepath.Join("..", "..", "examples", "network.yaml")
	theme := filepath.Join("..", "..", "examples", "theme.json")

	out, err := execute(t, "build", input, "--theme", theme, "--no-auto-create", "--no-cache")
	if err != nil {
		t.Fatalf("build example: %v", err)
	}
	for _, want := range []string{`"id": "rack_a"`, `"text": "data"`, `"JetBrains Mono"`} {
		if !strings.Contains(out, want) {
			t.Errorf("example output missing %s", want)
		}
	}
}

func TestCompletionScript(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "graphloom") {
		t.Errorf("bash completion does not mention graphloom:\n%.200s", out)
	}
}

func TestFlagCompletions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
		skip []string
	}{
		{"render format", []string{"render", "net.yaml", "--format", ""}, []string{"dot", "pdf", "png", "svg"}, []string{"yaml"}},
		{"sample format", []string{"settings", "sample", "--format", ""}, []string{"json", "yaml", "toml"}, []string{"svg"}},
		{"elkjs mode", []string{"build", "net.yaml", "--elkjs-mode", ""}, []string{"node", "npm", "npx"}, nil},
		{"settings files", []string{"build", "net.yaml", "--settings", ""}, []string{"jsonc", "toml"}, nil},
		{"option ids", []string{"options", "org.eclipse.elk.spacing.node"}, []string{"org.eclipse.elk.spacing.nodeNode"}, []string{"org.eclipse.elk.direction"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			root := New(io.Discard, LogInfo).RootCommand()
			root.SetArgs(append([]string{cobra.ShellCompRequestCmd}, tt.args...))
			root.SetOut(&out)
			root.SetErr(io.Discard)
			if err := root.Execute(); err != nil {
				t.Fatalf("complete: %v", err)
			}
			lines := strings.Split(out.String(), "\n")
			for _, w := range tt.want {
				if !slices.Contains(lines, w) {
					t.Errorf("completions %q missing %q", lines, w)
				}
			}
			for _, s := range tt.skip {
				if slices.Contains(lines, s) {
					t.Errorf("completions %q should not offer %q", lines, s)
				}
			}
		})
	}
}

package elkjs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphloom/pkg/cache"
	"github.com/matzehuels/graphloom/pkg/errors"
)

var quiet = log.NewWithOptions(io.Discard, log.Options{})

// fakeNode writes an executable shell script standing in for node.
func fakeNode(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "node")
	script := "#!/bin/sh\ncat >/dev/null\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStripInternal(t *testing.T) {
	in := map[string]any{
		"id": "canvas",
		"$H": 12,
		"children": []any{
			map[string]any{"id": "a", "x": 10, "$x": 1},
			"plain",
		},
		"nested": map[string]any{"$drop": true, "keep": 1},
	}
	want := map[string]any{
		"id": "canvas",
		"children": []any{
			map[string]any{"id": "a", "x": 10},
			"plain",
		},
		"nested": map[string]any{"keep": 1},
	}
	if got := StripInternal(in); !reflect.DeepEqual(got, want) {
		t.Errorf("StripInternal = %v, want %v", got, want)
	}
	if _, ok := in["$H"]; !ok {
		t.Error("StripInternal modified its input")
	}
}

func TestCheckMode(t *testing.T) {
	for _, m := range []string{ModeNode, ModeNPM, ModeNPX} {
		if err := CheckMode(m); err != nil {
			t.Errorf("CheckMode(%q) = %v", m, err)
		}
	}
	err := CheckMode("deno")
	want := "Unsupported elkjs mode 'deno'. Use 'node', 'npm', or 'npx'."
	if got := errors.UserMessage(err); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestLayoutUnsupportedMode(t *testing.T) {
	r := NewRunner(Options{Mode: "bun", Logger: quiet})
	_, err := r.Layout(context.Background(), map[string]any{"id": "canvas"})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Layout = %v, want UNSUPPORTED", err)
	}
}

func TestLayoutSuccess(t *testing.T) {
	node := fakeNode(t, `echo '{"id":"canvas","$H":3,"x":0,"children":[{"id":"a","x":12,"$id":1}]}'`)
	r := NewRunner(Options{NodeCmd: node, Logger: quiet})

	out, err := r.Layout(context.Background(), map[string]any{"id": "canvas"})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if _, ok := out["$H"]; ok {
		t.Error("internal key $H survived")
	}
	child := out["children"].([]any)[0].(map[string]any)
	if _, ok := child["$id"]; ok {
		t.Error("nested internal key $id survived")
	}
	if child["id"] != "a" {
		t.Errorf("child id = %v, want a", child["id"])
	}
}

func TestLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
		want string
	}{
		{
			name: "missing module",
			body: `echo "Error: Cannot find module 'elkjs'" >&2; exit 2`,
			code: errors.ErrCodeLayoutFailed,
			want: "elkjs layout failed with exit code 2. Install elkjs with 'npm install elkjs' or use mode='npm'.\nError: Cannot find module 'elkjs'",
		},
		{
			name: "plain failure",
			body: `echo boom >&2; exit 3`,
			code: errors.ErrCodeLayoutFailed,
			want: "elkjs layout failed with exit code 3.\nboom",
		},
		{
			name: "non json",
			body: `echo not-json`,
			code: errors.ErrCodeLayoutFailed,
			want: "elkjs returned non-JSON output.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(Options{NodeCmd: fakeNode(t, tt.body), Logger: quiet})
			_, err := r.Layout(context.Background(), map[string]any{"id": "canvas"})
			if !errors.Is(err, tt.code) {
				t.Fatalf("Layout = %v, want %s", err, tt.code)
			}
			if got := errors.UserMessage(err); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLayoutMissingBinary(t *testing.T) {
	r := NewRunner(Options{NodeCmd: "graphloom-no-such-node", Logger: quiet})
	_, err := r.Layout(context.Background(), map[string]any{"id": "canvas"})
	want := "Failed to run elkjs layout: 'graphloom-no-such-node' was not found in PATH."
	if got := errors.UserMessage(err); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestLayoutTimeout(t *testing.T) {
	r := NewRunner(Options{NodeCmd: fakeNode(t, "exec sleep 5"), Timeout: 50 * time.Millisecond, Logger: quiet})
	_, err := r.Layout(context.Background(), map[string]any{"id": "canvas"})
	if !errors.Is(err, errors.ErrCodeTimeout) {
		t.Errorf("Layout = %v, want TIMEOUT", err)
	}
}

func TestEnsureWorkspaceSkipsInstalled(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(Options{Mode: ModeNPM, CacheDir: dir, NPMCmd: "graphloom-no-such-npm", Logger: quiet})
	mod := filepath.Join(r.Workspace(), "node_modules", "elkjs")
	if err := os.MkdirAll(mod, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(mod, "package.json"), []byte(`{"version":"`+Version+`"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	ws, err := r.EnsureWorkspace(context.Background())
	if err != nil {
		t.Fatalf("EnsureWorkspace: %v", err)
	}
	if ws != r.Workspace() {
		t.Errorf("workspace = %s, want %s", ws, r.Workspace())
	}
	if _, err := os.Stat(filepath.Join(ws, "package.json")); err != nil {
		t.Errorf("workspace manifest missing: %v", err)
	}
}

func TestEnsureWorkspaceRetriesNPM(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	dir := t.TempDir()
	counter := filepath.Join(dir, "calls")
	npm := filepath.Join(dir, "npm")
	script := "#!/bin/sh\necho x >> " + counter + "\necho 'ETIMEDOUT' >&2\nexit 1\n"
	if err := os.WriteFile(npm, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	r := NewRunner(Options{
		Mode:     ModeNPX,
		CacheDir: filepath.Join(dir, "cache"),
		NPMCmd:   npm,
		Logger:   quiet,
		Retry:    &cache.RetryPolicy{Attempts: 2, Delay: time.Millisecond},
	})

	_, err := r.EnsureWorkspace(context.Background())
	if !errors.Is(err, errors.ErrCodeNetwork) {
		t.Fatalf("EnsureWorkspace = %v, want NETWORK_ERROR", err)
	}
	data, _ := os.ReadFile(counter)
	if calls := strings.Count(string(data), "x"); calls != 2 {
		t.Errorf("npm ran %d times, want 2", calls)
	}
}

func TestKey(t *testing.T) {
	if k := NewRunner(Options{}).Key(); k.Mode != ModeNode || k.ElkjsVersion != "" {
		t.Errorf("node Key() = %+v", k)
	}
	if k := NewRunner(Options{Mode: ModeNPX}).Key(); k.Mode != ModeNPM || k.ElkjsVersion != Version {
		t.Errorf("npx Key() = %+v", k)
	}
}

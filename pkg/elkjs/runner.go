package elkjs

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphloom/pkg/cache"
	"github.com/matzehuels/graphloom/pkg/errors"
)

// Layout modes.
const (
	ModeNode = "node"
	ModeNPM  = "npm"
	ModeNPX  = "npx"
)

// Version is the elkjs release installed in npm mode.
const Version = "0.11.0"

const missingModule = "Cannot find module 'elkjs'"

// Options configures a Runner. Zero values select the defaults.
type Options struct {
	Mode     string        // node, npm or npx; default node
	NodeCmd  string        // default "node"
	NPMCmd   string        // default "npm"
	CacheDir string        // npm workspace parent; default cache.DefaultDir()
	Timeout  time.Duration // per layout; zero means no limit
	Logger   *log.Logger
	Retry    *cache.RetryPolicy // npm install retries; default cache.DefaultRetry
}

// Runner executes elkjs layouts through a node subprocess.
type Runner struct {
	opts   Options
	logger *log.Logger
}

// NewRunner applies defaults to opts. The mode is checked by Layout so that
// a misconfigured runner still reports the documented error.
func NewRunner(opts Options) *Runner {
	if opts.Mode == "" {
		opts.Mode = ModeNode
	}
	if opts.NodeCmd == "" {
		opts.NodeCmd = "node"
	}
	if opts.NPMCmd == "" {
		opts.NPMCmd = "npm"
	}
	if opts.CacheDir == "" {
		opts.CacheDir = cache.DefaultDir()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{opts: opts, logger: logger}
}

// Mode returns the configured mode.
func (r *Runner) Mode() string { return r.opts.Mode }

// Key returns the cache key options describing this runner's output.
func (r *Runner) Key() cache.LayoutKeyOpts {
	k := cache.LayoutKeyOpts{Mode: r.opts.Mode}
	if r.usesWorkspace() {
		k.Mode = ModeNPM
		k.ElkjsVersion = Version
	}
	return k
}

// CheckMode validates a mode name.
func CheckMode(mode string) error {
	switch mode {
	case ModeNode, ModeNPM, ModeNPX:
		return nil
	}
	return errors.New(errors.ErrCodeUnsupported,
		"Unsupported elkjs mode '%s'. Use 'node', 'npm', or 'npx'.", mode)
}

// Workspace returns the directory npm mode installs elkjs into.
func (r *Runner) Workspace() string {
	return filepath.Join(r.opts.CacheDir, "elkjs")
}

func (r *Runner) usesWorkspace() bool {
	return r.opts.Mode == ModeNPM || r.opts.Mode == ModeNPX
}

// Layout runs elkjs over doc, which must encode as an ELK JSON graph, and
// returns the positioned graph without elkjs-internal keys.
func (r *Runner) Layout(ctx context.Context, doc any) (map[string]any, error) {
	if err := CheckMode(r.opts.Mode); err != nil {
		return nil, err
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout input")
	}

	dir := ""
	if r.usesWorkspace() {
		if dir, err = r.EnsureWorkspace(ctx); err != nil {
			return nil, err
		}
	}

	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, r.opts.NodeCmd, "-e", layoutScript)
	cmd.Dir = dir
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		return nil, r.runError(ctx, err, stderr.String())
	}
	r.logger.Debug("elkjs layout", "mode", r.opts.Mode, "bytes", stdout.Len(), "duration", time.Since(start))

	var raw any
	if err := json.Unmarshal(stdout.Bytes(), &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "elkjs returned non-JSON output.")
	}
	out, ok := StripInternal(raw).(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeLayoutFailed, "elkjs returned a non-object document.")
	}
	return out, nil
}

func (r *Runner) runError(ctx context.Context, err error, stderr string) error {
	if stderrors.Is(err, exec.ErrNotFound) {
		return errors.Wrap(errors.ErrCodeLayoutFailed, err,
			"Failed to run elkjs layout: '%s' was not found in PATH.", r.opts.NodeCmd)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrap(errors.ErrCodeTimeout, ctxErr, "elkjs layout did not finish")
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		hint := ""
		if strings.Contains(stderr, missingModule) {
			hint = " Install elkjs with 'npm install elkjs' or use mode='npm'."
		}
		return errors.New(errors.ErrCodeLayoutFailed, "elkjs layout failed with exit code %d.%s\n%s",
			exitErr.ExitCode(), hint, strings.TrimSpace(stderr))
	}
	return errors.Wrap(errors.ErrCodeLayoutFailed, err, "Failed to run elkjs layout.")
}

// StripInternal returns a copy of v without object keys starting with "$",
// at any depth.
func StripInternal(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			if strings.HasPrefix(k, "$") {
				continue
			}
			out[k] = StripInternal(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = StripInternal(item)
		}
		return out
	}
	return v
}

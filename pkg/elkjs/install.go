package elkjs

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/matzehuels/graphloom/pkg/cache"
	"github.com/matzehuels/graphloom/pkg/errors"
)

const workspaceManifest = `{
  "name": "graphloom-elkjs-cache",
  "private": true,
  "description": "Local cache used by graphloom for elkjs layout."
}
`

// EnsureWorkspace makes sure elkjs@Version is installed in the npm
// workspace and returns its path. npm failures are retried with backoff.
func (r *Runner) EnsureWorkspace(ctx context.Context) (string, error) {
	dir := r.Workspace()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeLayoutFailed, err, "create elkjs workspace")
	}
	manifest := filepath.Join(dir, "package.json")
	if _, err := os.Stat(manifest); os.IsNotExist(err) {
		if err := os.WriteFile(manifest, []byte(workspaceManifest), 0o644); err != nil {
			return "", errors.Wrap(errors.ErrCodeLayoutFailed, err, "create elkjs workspace")
		}
	}

	if InstalledVersion(dir) == Version {
		return dir, nil
	}

	r.logger.Info("installing elkjs", "version", Version, "dir", dir)
	policy := cache.DefaultRetry
	if r.opts.Retry != nil {
		policy = *r.opts.Retry
	}
	err := policy.Do(ctx, func() error { return r.npmInstall(ctx, dir) })
	if err != nil {
		return "", err
	}
	return dir, nil
}

func (r *Runner) npmInstall(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, r.opts.NPMCmd, "install", "--no-fund", "--no-audit", "elkjs@"+Version)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if stderrors.Is(err, exec.ErrNotFound) {
		return errors.Wrap(errors.ErrCodeLayoutFailed, err,
			"Failed to install elkjs automatically: '%s' was not found in PATH.", r.opts.NPMCmd)
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		r.logger.Warn("npm install failed", "exit", exitErr.ExitCode())
		return cache.Retryable(errors.Wrap(errors.ErrCodeNetwork,
			fmt.Errorf("%w: %s", cache.ErrNetwork, strings.TrimSpace(stderr.String())),
			"Failed to install elkjs automatically (exit %d).", exitErr.ExitCode()))
	}
	return errors.Wrap(errors.ErrCodeLayoutFailed, err, "Failed to install elkjs automatically.")
}

// InstalledVersion reads node_modules/elkjs/package.json below dir and
// returns its version, or "" when elkjs is missing or unreadable.
func InstalledVersion(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "node_modules", "elkjs", "package.json"))
	if err != nil {
		return ""
	}
	var pkg struct {
		Version string `json:"version"`
	}
	if json.Unmarshal(data, &pkg) != nil {
		return ""
	}
	return pkg.Version
}

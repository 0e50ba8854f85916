package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/graphloom/pkg/builder"
	"github.com/matzehuels/graphloom/pkg/cache"
	"github.com/matzehuels/graphloom/pkg/canvas"
	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/graph"
	"github.com/matzehuels/graphloom/pkg/observability"
	"github.com/matzehuels/graphloom/pkg/profile"
	"github.com/matzehuels/graphloom/pkg/render"
	"github.com/matzehuels/graphloom/pkg/render/nodelink"
	"github.com/matzehuels/graphloom/pkg/settings"
)

// Cache key types reported to observability hooks.
const (
	keyTypeLayout   = "layout"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner holds no per-run state, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Layouter Layouter
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer, a nil logger uses log.Default(), and a nil
// layouter makes layout requests fail.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger, layouter Layouter) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger, Layouter: layouter}
}

// Execute runs build, then layout and preview when requested.
func (r *Runner) Execute(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options: %v", err)
	}
	result := &Result{Source: opts.Source}

	start := time.Now()
	c, resolved, err := r.Build(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Canvas = c
	result.Profile = resolved
	result.Stats.Stats = c.Stats()
	result.Stats.BuildTime = time.Since(start)
	if data, err := json.Marshal(c); err == nil {
		result.CanvasHash = cache.Hash(data)
	}

	r.Logger.Info("built canvas",
		"source", opts.Source,
		"nodes", result.Stats.Nodes,
		"subgraphs", result.Stats.Subgraphs,
		"edges", result.Stats.Edges,
		"duration", result.Stats.BuildTime)

	if opts.Layout {
		start = time.Now()
		layout, hit, err := r.LayoutWithCacheInfo(ctx, c, opts)
		if err != nil {
			return nil, err
		}
		result.Layout = layout
		result.Stats.LayoutTime = time.Since(start)
		result.CacheInfo.LayoutHit = hit
		r.Logger.Info("computed layout", "cached", hit, "duration", result.Stats.LayoutTime)
	}

	if opts.Preview != "" {
		start = time.Now()
		preview, hit, err := r.PreviewWithCacheInfo(ctx, c, opts)
		if err != nil {
			return nil, err
		}
		result.Preview = preview
		result.Stats.PreviewTime = time.Since(start)
		result.CacheInfo.PreviewHit = hit
		r.Logger.Info("rendered preview", "format", opts.Preview, "cached", hit, "bytes", len(preview))
	}

	return result, nil
}

// Build resolves the run's settings and builds g.
func (r *Runner) Build(ctx context.Context, g *graph.Graph, opts Options) (*canvas.Canvas, *profile.Resolved, error) {
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, opts.Source)
	start := time.Now()

	c, resolved, err := r.build(g, opts)

	var stats observability.BuildStats
	if c != nil {
		s := c.Stats()
		stats = observability.BuildStats{Nodes: s.Nodes, Subgraphs: s.Subgraphs, Ports: s.Ports, Edges: s.Edges}
	}
	hooks.OnBuildComplete(ctx, opts.Source, stats, time.Since(start), err)
	return c, resolved, err
}

func (r *Runner) build(g *graph.Graph, opts Options) (*canvas.Canvas, *profile.Resolved, error) {
	s, resolved, err := ResolveSettings(opts)
	if err != nil {
		return nil, nil, err
	}
	c, err := builder.Build(g, s, builder.WithParallel(opts.Parallel))
	if err != nil {
		return nil, nil, err
	}
	return c, resolved, nil
}

// ResolveSettings picks the settings for a run: the profile bundle if set,
// else opts.Settings, else the sample settings; then the theme and the
// auto-create switch are applied to a copy.
func ResolveSettings(opts Options) (*settings.Settings, *profile.Resolved, error) {
	var resolved *profile.Resolved
	s := opts.Settings
	if opts.Profile != nil {
		var err error
		if resolved, err = profile.Resolve(opts.Profile); err != nil {
			return nil, nil, err
		}
		s = resolved.Settings
	}
	if s == nil {
		s = settings.Sample()
	}
	if opts.Theme != nil {
		s = settings.ApplyTheme(s, opts.Theme)
	}
	if opts.NoAutoCreate && s.AutoCreateMissingNodes {
		s = s.Clone()
		s.AutoCreateMissingNodes = false
	}
	return s, resolved, nil
}

// LayoutWithCacheInfo lays out c, reusing a cached result for the same
// canvas and layouter configuration. The bool reports a cache hit.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, c *canvas.Canvas, opts Options) (map[string]any, bool, error) {
	if r.Layouter == nil {
		return nil, false, errors.New(errors.ErrCodeUnsupported, "no layout engine configured")
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "encode canvas")
	}
	key := r.Keyer.LayoutKey(cache.Hash(data), r.Layouter.Key())

	if !opts.Refresh {
		if cached, hit := r.cached(ctx, key, keyTypeLayout); hit {
			var layout map[string]any
			if err := json.Unmarshal(cached, &layout); err == nil {
				return layout, true, nil
			}
		}
	}

	hooks := observability.Pipeline()
	mode := r.Layouter.Key().Mode
	hooks.OnLayoutStart(ctx, mode, c.Stats().Nodes)
	start := time.Now()
	layout, err := r.Layouter.Layout(ctx, c)
	hooks.OnLayoutComplete(ctx, mode, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if out, err := json.Marshal(layout); err == nil {
		r.store(ctx, key, keyTypeLayout, out, cache.LayoutTTL)
	}
	return layout, false, nil
}

// Layout is LayoutWithCacheInfo without the cache hit flag.
func (r *Runner) Layout(ctx context.Context, c *canvas.Canvas, opts Options) (map[string]any, error) {
	layout, _, err := r.LayoutWithCacheInfo(ctx, c, opts)
	return layout, err
}

// PreviewWithCacheInfo renders a Graphviz preview of c in opts.Preview
// format. DOT is cheap and never cached.
func (r *Runner) PreviewWithCacheInfo(ctx context.Context, c *canvas.Canvas, opts Options) ([]byte, bool, error) {
	format := opts.Preview
	if format == "" {
		format = FormatSVG
	}
	if err := ValidateFormat(format); err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInvalidFormat, err, "%v", err)
	}

	dot := nodelink.ToDOT(c, nodelink.Options{Detailed: opts.Detailed})
	if format == FormatDOT {
		return []byte(dot), false, nil
	}

	key := r.Keyer.ArtifactKey(cache.Hash([]byte(dot)), cache.ArtifactKeyOpts{Format: format, Detailed: opts.Detailed})
	if !opts.Refresh {
		if cached, hit := r.cached(ctx, key, keyTypeArtifact); hit {
			return cached, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()
	out, err := renderPreview(ctx, dot, format)
	hooks.OnRenderComplete(ctx, format, len(out), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	r.store(ctx, key, keyTypeArtifact, out, cache.ArtifactTTL)
	return out, false, nil
}

// Preview is PreviewWithCacheInfo without the cache hit flag.
func (r *Runner) Preview(ctx context.Context, c *canvas.Canvas, opts Options) ([]byte, error) {
	out, _, err := r.PreviewWithCacheInfo(ctx, c, opts)
	return out, err
}

func renderPreview(ctx context.Context, dot, format string) ([]byte, error) {
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render preview")
	}
	switch format {
	case FormatPNG:
		return render.ToPNG(ctx, svg, DefaultPNGScale)
	case FormatPDF:
		return render.ToPDF(ctx, svg)
	}
	return svg, nil
}

// Job is one input of a batch run.
type Job struct {
	Source string
	Graph  *graph.Graph
}

// ExecuteAll runs jobs concurrently, at most limit at a time (limit <= 0
// means unlimited). Results are returned in job order. The first failure
// cancels the remaining jobs.
func (r *Runner) ExecuteAll(ctx context.Context, jobs []Job, opts Options, limit int) ([]*Result, error) {
	results := make([]*Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, job := range jobs {
		g.Go(func() error {
			o := opts
			o.Source = job.Source
			res, err := r.Execute(ctx, job.Graph, o)
			if err != nil {
				return fmt.Errorf("%s: %w", job.Source, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) cached(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "stage", keyType, "err", err)
		return nil, false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
		return data, true
	}
	observability.Cache().OnCacheMiss(ctx, keyType)
	return nil, false
}

func (r *Runner) store(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "stage", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/graph"
	"github.com/matzehuels/graphloom/pkg/io"
	"github.com/matzehuels/graphloom/pkg/pipeline"
	"github.com/matzehuels/graphloom/pkg/settings"
)

// outputSuffix replaces the input extension when several inputs are built.
const outputSuffix = ".elk.json"

// settingsOpts are the flags that pick the settings for a build.
type settingsOpts struct {
	settingsPath   string
	profilePath    string
	profileID      string
	profileVersion int
	themePath      string
	noAutoCreate   bool
	parallel       bool
	store          storeOpts
}

func (o *settingsOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.settingsPath, "settings", "s", "", "settings file (json, jsonc, yaml, toml); default: built-in sample")
	cmd.Flags().StringVar(&o.profilePath, "profile", "", "profile bundle file used instead of --settings")
	cmd.Flags().StringVar(&o.profileID, "profile-id", "", "profile bundle id looked up in the profile store")
	cmd.Flags().IntVar(&o.profileVersion, "profile-version", 0, "profile bundle version (0: latest)")
	cmd.Flags().StringVar(&o.themePath, "theme", "", "theme metrics file applied on top of the settings")
	cmd.Flags().BoolVar(&o.noAutoCreate, "no-auto-create", false, "fail on edges that reference undeclared nodes")
	cmd.Flags().BoolVar(&o.parallel, "parallel", false, "build sibling subgraphs concurrently")
	o.store.register(cmd)
	cmd.MarkFlagsMutuallyExclusive("settings", "profile", "profile-id")
}

// files lists the local files the options read, for --watch.
func (o *settingsOpts) files() []string {
	var out []string
	for _, p := range []string{o.settingsPath, o.profilePath, o.themePath} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// pipelineOptions loads the settings, profile bundle and theme files.
func (o *settingsOpts) pipelineOptions(ctx context.Context) (pipeline.Options, error) {
	opts := pipeline.Options{
		NoAutoCreate: o.noAutoCreate,
		Parallel:     o.parallel,
	}

	switch {
	case o.settingsPath != "":
		s, err := settings.Load(o.settingsPath)
		if err != nil {
			return opts, err
		}
		opts.Settings = s
	case o.profilePath != "":
		m, err := io.ReadMap(o.profilePath)
		if err != nil {
			return opts, err
		}
		opts.Profile = m
	case o.profileID != "":
		store, err := openStore(ctx, o.store)
		if err != nil {
			return opts, err
		}
		defer store.Close()
		b, err := store.Get(ctx, o.profileID, o.profileVersion)
		if err != nil {
			return opts, err
		}
		opts.Profile = b.Map()
	default:
		opts.Settings = settings.Sample()
	}

	if opts.Settings != nil {
		if err := opts.Settings.ApplyEnv(os.LookupEnv); err != nil {
			return opts, err
		}
	}

	if o.themePath != "" {
		metrics, err := settings.LoadTheme(o.themePath)
		if err != nil {
			return opts, err
		}
		opts.Theme = metrics
	}
	return opts, nil
}

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output string
	jobs   int
	watch  bool
	settingsOpts
	runner runnerOpts
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build <input>...",
		Short: "Build ELK JSON from graph descriptions",
		Long: `Build canonicalizes one or more graph descriptions into ELK JSON.

With a single input the document goes to --output, or stdout when no output
is given. With several inputs they are built concurrently and --output names
a directory; each document is written as <name>.elk.json.`,
		Example: `  graphloom build network.yaml -o network.elk.json
  graphloom build network.yaml --settings elk.toml --layout
  graphloom build site-a.yaml site-b.yaml -o out/ --jobs 4
  graphloom build network.yaml -o network.elk.json --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch {
				return c.watchBuild(cmd.Context(), args, &opts)
			}
			return c.runBuild(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or directory when several inputs are given")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "concurrent builds for several inputs (0: unlimited)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "rebuild when an input or settings file changes")
	cmd.Flags().BoolVar(&opts.runner.layout, "layout", false, "lay the canvas out with elkjs")
	opts.settingsOpts.register(cmd)
	opts.runner.register(cmd)

	return cmd
}

// runBuild builds every input once.
func (c *CLI) runBuild(ctx context.Context, inputs []string, opts *buildOpts) error {
	base, err := opts.pipelineOptions(ctx)
	if err != nil {
		return err
	}
	base.Layout = opts.runner.layout

	runner, err := c.newRunner(ctx, opts.runner)
	if err != nil {
		return err
	}
	defer runner.Close()

	jobs := make([]pipeline.Job, 0, len(inputs))
	for _, path := range inputs {
		g, err := graph.ReadFile(path)
		if err != nil {
			return err
		}
		jobs = append(jobs, pipeline.Job{Source: path, Graph: g})
	}

	if len(jobs) == 1 {
		return c.buildOne(ctx, runner, jobs[0], base, opts.output)
	}
	return c.buildMany(ctx, runner, jobs, base, opts)
}

func (c *CLI) buildOne(ctx context.Context, runner *pipeline.Runner, job pipeline.Job, opts pipeline.Options, output string) error {
	opts.Source = job.Source

	var spin *Spinner
	if opts.Layout {
		spin = newSpinnerWithContext(ctx, "Running elkjs layout...")
		spin.Start()
	}
	res, err := runner.Execute(ctx, job.Graph, opts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	if output == "" {
		return io.WriteJSON(c.out, res.Document())
	}
	if err := io.ExportJSON(output, res.Document()); err != nil {
		return err
	}
	printSuccess("Built %s", job.Source)
	printStats(res.Stats.Nodes, res.Stats.Edges, res.CacheInfo.LayoutHit)
	printFile(output)
	return nil
}

func (c *CLI) buildMany(ctx context.Context, runner *pipeline.Runner, jobs []pipeline.Job, opts pipeline.Options, bo *buildOpts) error {
	dir := bo.output
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	outputs := make([]string, len(jobs))
	seen := make(map[string]string, len(jobs))
	for i, job := range jobs {
		out := filepath.Join(dir, outputName(job.Source))
		if prev, ok := seen[out]; ok {
			return errors.New(errors.ErrCodeInvalidInput, "inputs %s and %s both write %s", prev, job.Source, out)
		}
		seen[out] = job.Source
		outputs[i] = out
	}

	prog := newProgress(c.Logger)
	results, err := runner.ExecuteAll(ctx, jobs, opts, bo.jobs)
	if err != nil {
		return err
	}
	for i, res := range results {
		if err := io.ExportJSON(outputs[i], res.Document()); err != nil {
			return err
		}
		printFile(outputs[i])
	}
	prog.done(fmt.Sprintf("Built %d graphs", len(results)))
	return nil
}

// outputName maps "graphs/site-a.yaml" to "site-a.elk.json".
func outputName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + outputSuffix
}

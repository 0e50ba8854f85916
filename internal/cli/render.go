package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphloom/pkg/graph"
	"github.com/matzehuels/graphloom/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string
	format   string
	detailed bool
	refresh  bool
	settingsOpts
	runner runnerOpts
}

// renderCommand creates the render command for Graphviz previews.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: pipeline.FormatSVG}

	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Render a Graphviz preview of the built canvas",
		Long: `Render builds the canvas and draws it with Graphviz: subgraphs become
clusters and port labels are shown at the edge ends. The preview is a quick
check of the structure; it is not the ELK layout.

Without --output the preview is written to stdout. PNG and PDF need
rsvg-convert on PATH.`,
		Example: `  graphloom render network.yaml -o network.svg
  graphloom render network.yaml -f dot | dot -Tpng > network.png
  graphloom render network.yaml -f png --detailed -o network.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != "" && !cmd.Flags().Changed("format") {
				opts.format = formatFromPath(opts.output, opts.format)
			}
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "preview format: dot, svg, png, pdf")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node types and icons")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached previews")
	opts.settingsOpts.register(cmd)
	cmd.Flags().BoolVar(&opts.runner.noCache, "no-cache", false, "disable the preview cache")
	cmd.Flags().StringVar(&opts.runner.redisURL, "redis-url", "", "share the cache through Redis (redis://host:port/db)")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	g, err := graph.ReadFile(input)
	if err != nil {
		return err
	}
	po, err := opts.pipelineOptions(ctx)
	if err != nil {
		return err
	}
	po.Source = input
	po.Preview = opts.format
	po.Detailed = opts.detailed
	po.Refresh = opts.refresh

	runner, err := c.newRunner(ctx, opts.runner)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Execute(ctx, g, po)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := c.out.Write(res.Preview)
		return err
	}
	if err := os.WriteFile(opts.output, res.Preview, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Rendered %s", input)
	printStats(res.Stats.Nodes, res.Stats.Edges, res.CacheInfo.PreviewHit)
	printFile(opts.output)
	return nil
}

// formatFromPath picks the preview format from an output extension.
func formatFromPath(path, fallback string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if pipeline.ValidFormats[ext] {
		return ext
	}
	return fallback
}

package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphloom/pkg/graph"
	"github.com/matzehuels/graphloom/pkg/pipeline"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	plain bool
	settingsOpts
}

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Browse the built canvas interactively",
		Long: `Inspect builds the canvas and opens a browser over its node tree showing
each node's resolved type, icon, size, ports and properties. Use --plain to
print the tree instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the tree without the interactive browser")
	opts.settingsOpts.register(cmd)

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, opts *inspectOpts) error {
	g, err := graph.ReadFile(input)
	if err != nil {
		return err
	}
	po, err := opts.pipelineOptions(ctx)
	if err != nil {
		return err
	}
	po.Source = input

	runner := pipeline.NewRunner(nil, nil, c.Logger, nil)
	cv, _, err := runner.Build(ctx, g, po)
	if err != nil {
		return err
	}

	if opts.plain {
		fmt.Fprint(c.out, renderTree(cv))
		return nil
	}
	_, err = tea.NewProgram(NewCanvasModel(cv, input), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}

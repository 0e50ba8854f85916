package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphloom/pkg/props"
)

// optionsCommand lists the ELK option registry.
func (c *CLI) optionsCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "options [filter]",
		Short: "List known ELK layout options",
		Long: `Options lists the ELK option identifiers graphloom recognizes, with the
value kind each accepts and the elements it applies to. Keys in settings
files may use the short form (without "org.eclipse.elk."); they are
expanded to the identifiers shown here.`,
		Example: `  graphloom options spacing
  graphloom options port --plain`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			entries := props.Search(filter)
			if len(entries) == 0 {
				printInfo("No options match %q", filter)
				return nil
			}
			if plain {
				for _, e := range entries {
					fmt.Fprintf(c.out, "%s\t%s\t%s\n", e.ID, e.Kind, e.Targets)
				}
				return nil
			}

			t := newTable("Option", "Kind", "Applies to")
			for _, e := range entries {
				t.Row(e.ID, e.Kind.String(), e.Targets.String())
			}
			fmt.Fprintln(c.out, t.Render())
			printDetail("%s", fmtCount(len(entries), "option"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "tab separated output without styling")
	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphloom/pkg/io"
	"github.com/matzehuels/graphloom/pkg/settings"
)

// settingsCommand creates the settings command group.
func (c *CLI) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and validate settings files",
	}

	cmd.AddCommand(c.settingsSampleCommand())
	cmd.AddCommand(c.settingsCheckCommand())

	return cmd
}

// settingsSampleCommand prints the built-in sample settings.
func (c *CLI) settingsSampleCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the built-in sample settings",
		Example: `  graphloom settings sample > elk.json
  graphloom settings sample -f toml > elk.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := io.ParseFormat(format)
			if err != nil {
				return err
			}
			return io.Encode(c.out, settings.Sample(), f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(io.FormatJSON), "output format: json, yaml, toml")
	return cmd
}

// settingsCheckCommand validates a settings file and summarizes it.
func (c *CLI) settingsCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.Load(args[0])
			if err != nil {
				printError("%s is invalid", args[0])
				return err
			}
			r, err := settings.Resolve(s)
			if err != nil {
				printError("%s is invalid", args[0])
				return err
			}
			w, h := r.LeafSize()
			printSuccess("%s is valid", args[0])
			printKeyValue("layout", fmtCount(len(s.LayoutOptions), "option"))
			printKeyValue("type overrides", fmtCount(len(s.TypeOverrides), "type"))
			printKeyValue("icons", fmtCount(len(s.TypeIconMap), "type"))
			printKeyValue("leaf size", fmtSize(w, h))
			printKeyValue("auto-create", fmtBool(r.AutoCreate()))
			printKeyValue("estimate", fmtBool(r.EstimatesLabels()))
			return nil
		},
	}
}

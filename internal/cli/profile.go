package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphloom/pkg/io"
	"github.com/matzehuels/graphloom/pkg/profile"
)

// profileCommand creates the profile bundle command group.
func (c *CLI) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Resolve and store profile bundles",
		Long: `A profile bundle pins a settings document under an id and version:

  {"profileId": "...", "profileVersion": 1, "checksum": "...", "elkSettings": {...}}

Bundles can be used directly with build --profile or stored in a profile
store (a directory or MongoDB) and referenced with --profile-id.`,
	}

	cmd.AddCommand(c.profileResolveCommand())
	cmd.AddCommand(c.profilePutCommand())
	cmd.AddCommand(c.profileListCommand())

	return cmd
}

// profileResolveCommand validates a bundle file.
func (c *CLI) profileResolveCommand() *cobra.Command {
	var printSettings bool

	cmd := &cobra.Command{
		Use:   "resolve <bundle>",
		Short: "Validate a profile bundle and show what it resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := io.ReadMap(args[0])
			if err != nil {
				return err
			}
			r, err := profile.Resolve(m)
			if err != nil {
				return err
			}
			if printSettings {
				return io.WriteJSON(c.out, r.Settings)
			}
			printSuccess("%s resolves", args[0])
			printKeyValue("id", r.ProfileID)
			printKeyValue("version", strconv.Itoa(r.ProfileVersion))
			printKeyValue("checksum", r.Checksum)
			printKeyValue("layout", fmtCount(len(r.Settings.LayoutOptions), "option"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&printSettings, "print", false, "print the resolved settings as JSON")
	return cmd
}

// profilePutCommand stores a bundle file.
func (c *CLI) profilePutCommand() *cobra.Command {
	var store storeOpts

	cmd := &cobra.Command{
		Use:   "put <bundle>",
		Short: "Store a profile bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := io.ReadMap(args[0])
			if err != nil {
				return err
			}
			b, err := profile.FromMap(m)
			if err != nil {
				return err
			}
			s, err := openStore(cmd.Context(), store)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.Put(cmd.Context(), b); err != nil {
				return err
			}
			printSuccess("Stored %s v%d", b.ProfileID, b.ProfileVersion)
			printDetail("checksum %s", b.Checksum)
			printNextStep("Build with it", fmt.Sprintf("graphloom build <input> --profile-id %s --profile-version %d", b.ProfileID, b.ProfileVersion))
			return nil
		},
	}

	store.register(cmd)
	return cmd
}

// profileListCommand lists stored bundles.
func (c *CLI) profileListCommand() *cobra.Command {
	var store storeOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored profile bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd.Context(), store)
			if err != nil {
				return err
			}
			defer s.Close()
			list, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				printInfo("No profiles stored")
				return nil
			}
			t := newTable("Profile", "Version", "Checksum")
			for _, p := range list {
				t.Row(p.ProfileID, strconv.Itoa(p.ProfileVersion), truncate(p.Checksum, 16))
			}
			fmt.Fprintln(c.out, t.Render())
			return nil
		},
	}

	store.register(cmd)
	return cmd
}

package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphloom/pkg/elkjs"
	"github.com/matzehuels/graphloom/pkg/pipeline"
	"github.com/matzehuels/graphloom/pkg/props"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for graphloom.

To load completions:

Bash:
  $ source <(graphloom completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ graphloom completion bash > /etc/bash_completion.d/graphloom
  # macOS:
  $ graphloom completion bash > $(brew --prefix)/etc/bash_completion.d/graphloom

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ graphloom completion zsh > "${fpath[1]}/_graphloom"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ graphloom completion fish | source

  # To load completions for each session, execute once:
  $ graphloom completion fish > ~/.config/fish/completions/graphloom.fish

PowerShell:
  PS> graphloom completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> graphloom completion powershell > graphloom.ps1
  # and source this file from your PowerShell profile.

Besides command names, completion covers flag values:
  $ graphloom render net.yaml --format <TAB>     # dot pdf png svg
  $ graphloom build net.yaml --elkjs-mode <TAB>  # node npm npx
  $ graphloom build net.yaml --settings <TAB>    # .json .jsonc .yaml .yml .toml files
  $ graphloom options org.eclipse.elk.spacing<TAB>
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(c.out)
			case "zsh":
				return cmd.Root().GenZshCompletion(c.out)
			case "fish":
				return cmd.Root().GenFishCompletion(c.out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.out)
			}
			return nil
		},
	}

	return cmd
}

// settingsExts are the file extensions offered for settings, theme and
// profile flags.
var settingsExts = []string{"json", "jsonc", "yaml", "yml", "toml"}

// registerCompletions attaches flag value and argument completions to cmd
// and its subcommands.
func registerCompletions(cmd *cobra.Command) {
	complete := func(flag string, fn func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective)) {
		if cmd.Flags().Lookup(flag) != nil {
			_ = cmd.RegisterFlagCompletionFunc(flag, fn)
		}
	}

	switch cmd.Name() {
	case "render":
		complete("format", cobra.FixedCompletions(previewFormats(), cobra.ShellCompDirectiveNoFileComp))
	case "sample":
		complete("format", cobra.FixedCompletions([]string{"json", "yaml", "toml"}, cobra.ShellCompDirectiveNoFileComp))
	case "options":
		cmd.ValidArgsFunction = completeOptionIDs
	}
	complete("elkjs-mode", cobra.FixedCompletions([]string{elkjs.ModeNode, elkjs.ModeNPM, elkjs.ModeNPX}, cobra.ShellCompDirectiveNoFileComp))
	for _, flag := range []string{"settings", "profile", "theme"} {
		complete(flag, completeSettingsFiles)
	}
	complete("profile-store", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveFilterDirs
	})

	for _, sub := range cmd.Commands() {
		registerCompletions(sub)
	}
}

func previewFormats() []string {
	out := make([]string, 0, len(pipeline.ValidFormats))
	for f := range pipeline.ValidFormats {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

func completeSettingsFiles(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return settingsExts, cobra.ShellCompDirectiveFilterFileExt
}

// completeOptionIDs offers ELK option identifiers starting with the typed prefix.
func completeOptionIDs(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, e := range props.Search(toComplete) {
		if strings.HasPrefix(e.ID, toComplete) {
			out = append(out, e.ID)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

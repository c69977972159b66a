package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dot/pkg/commands"
)

func newTrackCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "track <name> <path>",
		Aliases: []string{"t"},
		Short:   MsgTrackShort,
		Long:    MsgTrackLong,
		Example: MsgTrackExample,
		Args:    cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, nil, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			result, err := commands.Track(commands.TrackOptions{
				Manifest: s.manifest,
				Name:     args[0],
				Path:     args[1],
			})
			if err != nil {
				return err
			}

			if !result.Added {
				s.renderer.RenderWarning(fmt.Sprintf(MsgAlreadyTracked, result.Entry.Name, result.Entry.OriginalPath))
				return nil
			}
			s.renderer.RenderSuccess(fmt.Sprintf(MsgTracked, result.Entry.Name, result.Entry.StoredPath))
			return nil
		},
	}
}

func newUntrackCmd(opts *globalOptions) *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:               "untrack <name>",
		Aliases:           []string{"u"},
		Short:             MsgUntrackShort,
		Long:              MsgUntrackLong,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeNames(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("purge") {
				overrides["untrack.purge"] = purge
			}

			s, err := openSession(cmd, opts, overrides, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			result, err := commands.Untrack(commands.UntrackOptions{
				Manifest: s.manifest,
				Name:     args[0],
				Purge:    s.cfg.Untrack.Purge,
			})
			if err != nil {
				return err
			}

			switch {
			case !result.Found:
				s.renderer.RenderWarning(fmt.Sprintf(MsgNotTracked, args[0]))
			case result.Purged:
				s.renderer.RenderSuccess(fmt.Sprintf(MsgPurged, args[0], result.Entry.StoredPath))
			default:
				s.renderer.RenderSuccess(fmt.Sprintf(MsgUntracked, args[0], result.Entry.StoredPath))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, MsgFlagPurge)
	return cmd
}

func newExportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "export <name>",
		Aliases:           []string{"e"},
		Short:             MsgExportShort,
		Long:              MsgExportLong,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeNames(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, nil, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			_, err = commands.Export(commands.TransferOptions{Manifest: s.manifest, Name: args[0]})
			return err
		},
	}
}

func newImportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "import <name>",
		Aliases:           []string{"i"},
		Short:             MsgImportShort,
		Long:              MsgImportLong,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeNames(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, nil, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			_, err = commands.Import(commands.TransferOptions{Manifest: s.manifest, Name: args[0]})
			return err
		},
	}
}

func newListCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("output") {
				overrides["output.format"] = format
			}

			s, err := openSession(cmd, opts, overrides, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return commands.List(commands.ListOptions{
				Manifest: s.manifest,
				Writer:   cmd.OutOrStdout(),
				Format:   s.cfg.Output.Format,
				Color:    s.cfg.Output.Color,
			})
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", MsgFlagOutput)
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(
		[]string{"text", "long", "yaml", "toml"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

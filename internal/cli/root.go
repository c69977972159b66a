package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dot/internal/version"
	"github.com/arthur-debert/dot/pkg/logging"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	verbosity    int
	manifestPath string
	color        string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "dot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetUsageTemplate(usageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionFormat, version.Commit, version.Date))

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.manifestPath, "manifest", "m", "", MsgFlagManifest)
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "", MsgFlagColor)
	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddCommand(newTrackCmd(opts))
	rootCmd.AddCommand(newUntrackCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newImportCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

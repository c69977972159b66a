package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dot/pkg/config"
	"github.com/arthur-debert/dot/pkg/manifest"
	"github.com/arthur-debert/dot/pkg/output"
	"github.com/arthur-debert/dot/pkg/paths"
)

// session is the per-invocation state: resolved config and the manifest
// loaded from it.
type session struct {
	cfg      *config.Config
	manifest *manifest.Manifest
	renderer *output.Renderer
}

// openSession loads configuration with the command line layered on top,
// then loads the manifest. Transfer lines go to out.
func openSession(cmd *cobra.Command, opts *globalOptions, overrides map[string]interface{}, out io.Writer) (*session, error) {
	if overrides == nil {
		overrides = make(map[string]interface{})
	}
	if opts.manifestPath != "" {
		overrides["manifest.path"] = opts.manifestPath
	}
	if opts.color != "" {
		overrides["output.color"] = opts.color
	}

	cfg, err := config.Load(config.LoadOptions{Overrides: overrides})
	if err != nil {
		return nil, err
	}

	m, err := manifest.Load(manifest.Options{
		Path:     cfg.ManifestPath(),
		BaseDir:  cfg.Storage.BaseDir,
		Out:      out,
		Reserved: []string{paths.UserConfigPath()},
	})
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		manifest: m,
		renderer: output.NewRenderer(cmd.ErrOrStderr(), cfg.Output.Color),
	}, nil
}

// completeNames offers tracked names for commands taking a single name.
func completeNames(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		s, err := openSession(cmd, opts, nil, io.Discard)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return s.manifest.Names(), cobra.ShellCompDirectiveNoFileComp
	}
}

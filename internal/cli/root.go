package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danieljhkim/tagsync/internal/config"
	"github.com/danieljhkim/tagsync/internal/engine"
	"github.com/danieljhkim/tagsync/internal/logging"
	"github.com/danieljhkim/tagsync/internal/reconcile"
)

var version = "dev"

// rootCmd is the root command for tagsync.
var rootCmd = NewRootCmd()

// NewRootCmd builds the tagsync command with fresh flag state.
func NewRootCmd() *cobra.Command {
	var (
		configFile  string
		dryRunAlias bool
	)

	cmd := &cobra.Command{
		Use:     "tagsync [flags] <file-or-directory>...",
		Version: version,
		Short:   "Synchronize shell tags with embedded IPTC keywords",
		Long: `tagsync reconciles the desktop-shell tags of files (stored in extended
attributes) with the IPTC keywords embedded in image metadata.

Directories are processed recursively. The --source flag selects which store
is authoritative: "shell" copies shell tags to the embedded keywords,
"embedded" copies embedded keywords to the shell tags, and "both" merges
them. Embedded keywords are never written; changes to them are reported only.`,
		Example: `  tagsync --dryrun ~/Pictures
  tagsync --source embedded -v scan.tif
  tagsync --keep-going --format json ~/Pictures/2017`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			settings, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			if dryRunAlias {
				settings.DryRun = true
			}
			return runSync(cmd, settings, args)
		},
	}

	flags := cmd.Flags()
	flags.String("source", reconcile.SourceBoth, fmt.Sprintf("Sync attributes source [%s]", strings.Join(reconcile.SourceNames, ", ")))
	flags.BoolP("verbose", "v", false, "Show what is being done")
	flags.Bool("dryrun", false, "Do not perform any modification of files")
	flags.BoolVar(&dryRunAlias, "dry-run", false, "Alias for --dryrun")
	_ = flags.MarkHidden("dry-run")
	flags.Bool("keep-going", false, "Continue with the remaining files after an error")
	flags.StringSlice("skip", config.DefaultSkip, "File names to skip inside directories")
	flags.String("format", "text", "Report format (text, json, yaml)")
	flags.String("attribute", "", "Extended attribute holding shell tags (default: platform Finder key)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&configFile, "config", "", "Config file (default: ~/.tagsync.yaml)")

	cmd.SetHelpFunc(customHelpFunc)
	cmd.SetVersionTemplate("{{.Version}}\n")
	return cmd
}

// bindFlags binds command flags to their config keys so that explicitly
// set flags take precedence over env and file values.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		config.KeySource:    "source",
		config.KeyVerbose:   "verbose",
		config.KeyDryRun:    "dryrun",
		config.KeyKeepGoing: "keep-going",
		config.KeySkip:      "skip",
		config.KeyFormat:    "format",
		config.KeyAttribute: "attribute",
		config.KeyLogLevel:  "log-level",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

func runSync(cmd *cobra.Command, s *config.Settings, paths []string) error {
	mode, err := reconcile.ParseMode(s.Source)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if s.ConfigFile != "" {
		logger.Debug().Str("file", s.ConfigFile).Msg("loaded config")
	}

	out := cmd.OutOrStdout()
	eng := newEngine(s, newConsoleObserver(out), logger)

	policy := engine.FailFast
	if s.KeepGoing {
		policy = engine.KeepGoing
	}

	ctx := logging.WithLogger(context.Background(), logger)
	report, runErr := eng.Run(ctx, &engine.RunRequest{
		Paths:   paths,
		Mode:    mode,
		Verbose: s.Verbose,
		DryRun:  s.DryRun,
		Skip:    engine.SkipNames(s.Skip...),
		Policy:  policy,
	})

	if report != nil {
		if err := writeReport(out, s.Format, report, s.Verbose || s.DryRun); err != nil {
			return err
		}
	}
	return runErr
}

// SetVersion sets the version printed by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
	rootCmd.Version = v
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/rulebook/internal/version"
	"github.com/arthur-debert/rulebook/pkg/config"
	"github.com/arthur-debert/rulebook/pkg/engine"
	"github.com/arthur-debert/rulebook/pkg/logging"
	"github.com/arthur-debert/rulebook/pkg/paths"
	"github.com/arthur-debert/rulebook/pkg/rules"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		rulesDir  string
	)

	rootCmd := &cobra.Command{
		Use:     "rulebook",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help but signal incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&rulesDir, "dir", "d", "", MsgFlagDir)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(
		newComposeCmd(&rulesDir),
		newListCmd(&rulesDir),
		newCheckCmd(&rulesDir),
		newWatchCmd(&rulesDir),
		newCompletionCmd(),
	)

	return rootCmd
}

// resolveConfig layers the configuration for the working directory and
// applies the --dir flag on top.
func resolveConfig(rulesDir string) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}
	if rulesDir != "" {
		cfg.Rules.Dir = rulesDir
	}
	return cfg, nil
}

// newEngine builds the query engine described by the configuration. A
// configured directory that does not exist falls back to the user-level
// rules directory when one is present.
func newEngine(cfg *config.Config) (*engine.Engine, error) {
	opts := []rules.LoadOption{rules.WithExtensions(cfg.Rules.Extensions...)}
	if cfg.Rules.RootDocument != "" {
		opts = append(opts, rules.WithRootDocument(paths.ExpandHome(cfg.Rules.RootDocument)))
	}
	return engine.New(paths.ResolveRulesDir(cfg.Rules.Dir), opts...)
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/rulebook/pkg/output"
	"github.com/arthur-debert/rulebook/pkg/resolve"
	"github.com/arthur-debert/rulebook/pkg/types"
	"github.com/arthur-debert/rulebook/pkg/watcher"
)

func newComposeCmd(rulesDir *string) *cobra.Command {
	var (
		asJSON bool
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "compose <path>",
		Short: MsgComposeShort,
		Long:  MsgComposeLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(*rulesDir)
			if err != nil {
				return err
			}
			eng, err := newEngine(cfg)
			if err != nil {
				return err
			}

			doc, err := eng.Compose(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return output.WriteJSON(cmd.OutOrStdout(), doc)
			}

			printWarnings(doc.Warnings)
			printDocument(cmd, doc, raw)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, MsgFlagJSON)
	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)
	return cmd
}

func newListCmd(rulesDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(*rulesDir)
			if err != nil {
				return err
			}
			eng, err := newEngine(cfg)
			if err != nil {
				return err
			}

			store := eng.Store()
			if store.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoRules)
				return nil
			}

			for _, doc := range store.Documents() {
				fmt.Fprintln(cmd.OutOrStdout(), formatRule(doc))
			}

			printWarnings(store.Warnings())
			return nil
		},
	}
}

func newCheckCmd(rulesDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(*rulesDir)
			if err != nil {
				return err
			}
			eng, err := newEngine(cfg)
			if err != nil {
				return err
			}

			store := eng.Store()
			failures := 0
			for _, doc := range store.Documents() {
				if _, err := resolve.Resolve(store, doc); err != nil {
					failures++
					fmt.Fprintln(cmd.OutOrStdout(),
						output.ErrorStyle.Render("✗ ")+output.RuleNameStyle.Render(doc.Name)+
							output.MutedStyle.Render("  "+err.Error()))
				}
			}

			printWarnings(store.Warnings())

			if failures > 0 {
				return fmt.Errorf(MsgCheckFailure, failures, store.Len())
			}

			fmt.Fprintln(cmd.OutOrStdout(),
				output.SuccessStyle.Render(fmt.Sprintf(MsgCheckOK, store.Len())))
			return nil
		},
	}
}

func newWatchCmd(rulesDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <path>",
		Short: MsgWatchShort,
		Long:  MsgWatchLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(*rulesDir)
			if err != nil {
				return err
			}
			eng, err := newEngine(cfg)
			if err != nil {
				return err
			}

			doc, err := eng.Compose(args[0])
			if err != nil {
				return err
			}
			printDocument(cmd, doc, false)

			w, err := watcher.New(eng,
				watcher.WithDebounce(cfg.Watch.DebounceDelay()),
				watcher.WithExtensions(cfg.Rules.Extensions...))
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() { _ = w.Run(ctx) }()

			fmt.Fprintln(os.Stderr, output.MutedStyle.Render(
				fmt.Sprintf(MsgWatching, eng.Store().Root())))

			for {
				select {
				case <-ctx.Done():
					return nil
				case reloadErr := <-w.Reloads():
					if reloadErr != nil {
						fmt.Fprintln(os.Stderr, output.ErrorStyle.Render(reloadErr.Error()))
						continue
					}
					doc, err := eng.Compose(args[0])
					if err != nil {
						fmt.Fprintln(os.Stderr, output.ErrorStyle.Render(err.Error()))
						continue
					}
					printDocument(cmd, doc, false)
				}
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     MsgCompletionShort,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}

// printDocument writes the composed document to stdout, glamour-rendered
// when attached to a terminal and not asked for raw text.
func printDocument(cmd *cobra.Command, doc *types.ResolvedDocument, raw bool) {
	if doc.Empty() {
		fmt.Fprintln(os.Stderr, output.MutedStyle.Render(MsgNoGuidance))
		return
	}

	if raw || !output.IsTerminal(os.Stdout) {
		fmt.Fprintln(cmd.OutOrStdout(), doc.Text())
		return
	}

	fmt.Fprint(cmd.OutOrStdout(), output.NewRenderer().Render(doc))
}

// printWarnings surfaces non-fatal issues on stderr so they never mix into
// piped output.
func printWarnings(warnings []types.Warning) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, output.WarningStyle.Render("warning: ")+w.String())
	}
}

// formatRule renders one line of `rulebook list`.
func formatRule(doc *types.RuleDocument) string {
	var b strings.Builder
	b.WriteString(output.RuleNameStyle.Render(doc.Name))

	if doc.AlwaysApply {
		b.WriteString("  " + output.SuccessStyle.Render("always"))
	}
	if len(doc.Globs) > 0 {
		b.WriteString("  " + output.GlobStyle.Render(strings.Join(doc.Globs, ", ")))
	}
	if doc.Description != "" {
		b.WriteString("\n    " + output.MutedStyle.Render(doc.Description))
	}
	return b.String()
}

package itergen

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/itergen/internal/version"
	"github.com/arthur-debert/itergen/pkg/commands"
	"github.com/arthur-debert/itergen/pkg/config"
	"github.com/arthur-debert/itergen/pkg/iters"
	"github.com/arthur-debert/itergen/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newGenerateCmd(g *globalOptions) *cobra.Command {
	var (
		dryRun       bool
		format       bool
		noFormat     bool
		formatScript string
		plain        bool
	)

	cmd := &cobra.Command{
		Use:               "generate [manifests...]",
		Short:             MsgGenerateShort,
		Long:              MsgGenerateLong,
		Example:           MsgGenerateExample,
		GroupID:           "core",
		ValidArgsFunction: manifestCompletion(g),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			opts := commands.GenerateOptions{
				Root:         g.root,
				Manifests:    args,
				Config:       cfg,
				FormatScript: formatScript,
				DryRun:       dryRun,
			}
			switch {
			case noFormat:
				disabled := false
				opts.Format = &disabled
			case format:
				opts.Format = &format
			}

			log.Info().
				Str("root", g.root).
				Strs("manifests", args).
				Bool("dry_run", dryRun).
				Msg("Generating")

			result, err := commands.Generate(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf(MsgErrGenerate, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.NewRenderer(plain || !isTerminal()).RenderReports(result.Reports))
			if dryRun && !plain {
				fmt.Fprintln(out, style.Render("[muted]"+strings.TrimSpace(MsgDryRunNotice)+"[/muted]"))
			}

			if result.Failed > 0 {
				return fmt.Errorf(MsgErrManifestsFailed, result.Failed, len(result.Reports))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&format, "format", false, MsgFlagFormat)
	cmd.Flags().BoolVar(&noFormat, "no-format", false, MsgFlagNoFormat)
	cmd.Flags().StringVar(&formatScript, "format-script", "", MsgFlagFormatScript)
	cmd.Flags().BoolVar(&plain, "plain", false, MsgFlagPlain)
	cmd.MarkFlagsMutuallyExclusive("format", "no-format")

	return cmd
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "render <manifest>",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := commands.Render(commands.RenderOptions{Manifest: args[0]})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
}

func newValuesCmd() *cobra.Command {
	var (
		mode  string
		size  int
		comma bool
		plain bool
		count bool
	)

	cmd := &cobra.Command{
		Use:     "values [values...]",
		Short:   MsgValuesShort,
		Long:    MsgValuesLong,
		Example: MsgValuesExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Values(commands.ValuesOptions{
				Mode:   mode,
				Size:   size,
				Comma:  comma,
				Values: args,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if count {
				fmt.Fprintln(out, len(result.Values))
				return nil
			}
			if plain {
				for _, v := range result.Values {
					fmt.Fprintln(out, v)
				}
				return nil
			}

			rows := make([][]string, len(result.Values))
			for i, v := range result.Values {
				rows[i] = []string{strconv.Itoa(i + 1), v}
			}
			fmt.Fprintln(out, style.NewTerminalRenderer().RenderTable([]string{"#", "value"}, rows))
			fmt.Fprintln(out, style.MutedStyle.Render(fmt.Sprintf(MsgValuesCount, len(result.Values))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", iters.ModeCombinations.String(), MsgFlagMode)
	cmd.Flags().IntVarP(&size, "size", "k", 1, MsgFlagSize)
	cmd.Flags().BoolVar(&comma, "comma", false, MsgFlagComma)
	cmd.Flags().BoolVar(&plain, "plain", false, MsgFlagPlain)
	cmd.Flags().BoolVar(&count, "count", false, MsgFlagCount)

	_ = cmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, m := range iters.Modes() {
			names = append(names, m.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newModesCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "modes",
		Short:   MsgModesShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, m := range commands.Modes() {
				rows = append(rows, []string{m.Name, strings.Join(m.Aliases, ", "), m.Count, m.Example})
			}
			header := []string{"mode", "aliases", "count", "example (a b c, k=2)"}
			fmt.Fprintln(cmd.OutOrStdout(), style.NewRenderer(plain).RenderTable(header, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, MsgFlagPlain)
	return cmd
}

func newConfigCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
	}

	var write, force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.DefaultContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := filepath.Join(g.root, config.ProjectFile)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf(MsgErrConfigExists, path)
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), style.Render(fmt.Sprintf(MsgConfigWritten, path)))
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	initCmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			fmt.Fprintf(out, MsgVersionCommit, version.Commit)
			fmt.Fprintf(out, MsgVersionBuilt, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// manifestCompletion completes manifest paths found below the project root
func manifestCompletion(g *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := g.loadConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		found, err := commands.DiscoverManifests(g.root, cfg)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var matches []string
		for _, f := range found {
			if strings.HasPrefix(f, toComplete) {
				matches = append(matches, f)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}

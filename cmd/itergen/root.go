package itergen

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/itergen/internal/version"
	"github.com/arthur-debert/itergen/pkg/config"
	"github.com/arthur-debert/itergen/pkg/logging"
	"github.com/arthur-debert/itergen/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity int
	root      string
	sets      []string
}

// loadConfig merges configuration for the project root, applying --set
// overrides last.
func (g *globalOptions) loadConfig() (*config.Config, error) {
	overrides := make(map[string]interface{}, len(g.sets))
	for _, s := range g.sets {
		key, value, ok := strings.Cut(s, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf(MsgErrBadSet, s)
		}
		overrides[key] = value
	}

	cfg, err := config.Load(g.root, overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "itergen",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			root, fallback, err := paths.FindRoot(opts.root)
			if err != nil {
				return err
			}
			if fallback {
				log.Debug().Str("root", root).Msg("No project root found, using working directory")
			}
			opts.root = root
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.root, "root", "C", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringArrayVar(&opts.sets, "set", nil, MsgFlagSet)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newValuesCmd())
	rootCmd.AddCommand(newModesCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

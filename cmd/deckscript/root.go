package deckscript

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/deckscript/internal/version"
	"github.com/arthur-debert/deckscript/pkg/cobrax/topics"
	"github.com/arthur-debert/deckscript/pkg/config"
	"github.com/arthur-debert/deckscript/pkg/logging"
	"github.com/arthur-debert/deckscript/pkg/ui"
)

// Command group IDs
const (
	groupScript = "script"
	groupMisc   = "misc"
)

// globals holds the persistent flags and the configuration loaded from them
type globals struct {
	verbosity  int
	configPath string
	cfg        *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globals{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:     "deckscript",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithOverrides(g.configPath, flagOverrides(cmd))
			if err != nil {
				return err
			}
			g.cfg = cfg

			logging.SetupLoggerWithOptions(logging.Options{
				Verbosity: g.verbosity,
				NoFile:    !cfg.Logging.File,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: groupScript, Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: groupMisc, Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newParseCmd(g))
	rootCmd.AddCommand(newCheckCmd(g))
	rootCmd.AddCommand(newStatsCmd(g))
	rootCmd.AddCommand(newGenConfigCmd(g))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, HelpTopics(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID(groupMisc)

	return rootCmd
}

// flagKeys maps command flags onto the configuration keys they override
var flagKeys = map[string]string{
	"format":   "output.format",
	"encoding": "input.encoding",
	"strict":   "check.strict",
}

// flagOverrides collects the flags set on the command line, so that flags
// win over env vars, config files and defaults
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := make(map[string]interface{})
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}
	return overrides
}

// renderer builds the output renderer for cmd from the configured format
func (g *globals) renderer(cmd *cobra.Command) (ui.Renderer, ui.Format, error) {
	format, err := ui.ParseFormat(g.cfg.Output.Format)
	if err != nil {
		return nil, format, err
	}

	r, err := ui.NewRendererWithOptions(format, cmd.OutOrStdout(), ui.Options{Color: g.cfg.Output.Color})
	if err != nil {
		return nil, format, err
	}
	return r, format, nil
}

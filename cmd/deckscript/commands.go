package deckscript

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/deckscript/internal/version"
	"github.com/arthur-debert/deckscript/pkg/config"
	"github.com/arthur-debert/deckscript/pkg/errors"
	"github.com/arthur-debert/deckscript/pkg/inspect"
	"github.com/arthur-debert/deckscript/pkg/logging"
	"github.com/arthur-debert/deckscript/pkg/script"
	"github.com/arthur-debert/deckscript/pkg/source"
	"github.com/arthur-debert/deckscript/pkg/ui"
	"github.com/arthur-debert/deckscript/pkg/ui/display"
)

// readScript reads path, taking stdin from the command so tests can feed it
func readScript(cmd *cobra.Command, path, encoding string) (*source.Script, error) {
	if path == "" || path == source.Stdin {
		return source.ReadFrom(cmd.InOrStdin(), "<stdin>", encoding)
	}
	return source.Read(path, encoding)
}

// report sends err through a structured renderer, so machine readers get an
// error document, and marks it as reported. Other formats leave err for main.
func report(r ui.Renderer, format ui.Format, err error) error {
	if !format.Structured() {
		return err
	}
	if rerr := r.RenderError(err); rerr != nil {
		return rerr
	}
	return errors.Wrap(err, errors.ErrReported, "error reported")
}

func newParseCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "parse [file|-]",
		Short:   MsgParseShort,
		Long:    MsgParseLong,
		Example: MsgParseExample,
		GroupID: groupScript,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.parse")
			done := logging.LogOperationStart(logger, "parse")
			defer done()

			r, format, err := g.renderer(cmd)
			if err != nil {
				return err
			}

			path := source.Stdin
			if len(args) == 1 {
				path = args[0]
			}
			src, err := readScript(cmd, path, g.cfg.Input.Encoding)
			if err != nil {
				return report(r, format, err)
			}

			commands, err := script.Parse(src.Text)
			if err != nil {
				logger.Debug().Err(err).Str("source", src.Name).Msg("Parse failed")
				return report(r, format, err)
			}

			return r.RenderResult(display.NewScriptResult(src.Name, src.Encoding, commands))
		},
	}

	addInputFlags(cmd)

	return cmd
}

func newCheckCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check <file>...",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: groupScript,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.check")
			done := logging.LogOperationStart(logger, "check")
			defer done()

			strict := g.cfg.Check.Strict
			r, _, err := g.renderer(cmd)
			if err != nil {
				return err
			}

			result := &display.CheckResult{Strict: strict}
			for _, path := range args {
				line, err := checkScript(cmd, path, g.cfg.Input.Encoding, strict)
				if err != nil {
					logger.Debug().Err(err).Str("path", path).Int("line", line).Msg("Check failed")
				}
				result.Add(path, line, err)
			}

			if err := r.RenderResult(result); err != nil {
				return err
			}
			if result.Failed > 0 {
				return errors.Newf(errors.ErrReported, MsgCheckFailed, result.Failed, len(result.Files))
			}
			return nil
		},
	}

	addInputFlags(cmd)
	cmd.Flags().Bool("strict", false, MsgFlagStrict)

	return cmd
}

// checkScript returns the first error of one script and the line it is on
func checkScript(cmd *cobra.Command, path, encoding string, strict bool) (int, error) {
	src, err := readScript(cmd, path, encoding)
	if err != nil {
		return 0, err
	}

	commands, err := script.Parse(src.Text)
	if err != nil {
		return locate(src.Text).errLine, err
	}
	if !strict {
		return 0, nil
	}

	if err := inspect.Validate(commands); err != nil {
		index, _ := errors.GetErrorDetails(err)["index"].(int)
		return locate(src.Text).commandLine(index), err
	}
	return 0, nil
}

func newStatsCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats [file|-]",
		Short:   MsgStatsShort,
		Long:    MsgStatsLong,
		GroupID: groupScript,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, format, err := g.renderer(cmd)
			if err != nil {
				return err
			}

			path := source.Stdin
			if len(args) == 1 {
				path = args[0]
			}
			src, err := readScript(cmd, path, g.cfg.Input.Encoding)
			if err != nil {
				return report(r, format, err)
			}
			commands, err := script.Parse(src.Text)
			if err != nil {
				return report(r, format, err)
			}

			return r.RenderResult(&display.StatsResult{
				Source:  src.Name,
				Summary: inspect.Summarize(commands),
			})
		},
	}

	addInputFlags(cmd)

	return cmd
}

func newGenConfigCmd(g *globals) *cobra.Command {
	var current bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !current {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
				return err
			}
			data, err := config.Marshal(g.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&current, "current", false, MsgFlagCurrent)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               groupMisc,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(out)
			case "fish":
				err = cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}

// addInputFlags adds --format and --encoding; their values reach the command
// through the configuration, see flagOverrides
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", MsgFlagFormat)
	cmd.Flags().StringP("encoding", "e", "", MsgFlagEncoding)
	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)
}

func formatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return ui.Formats(), cobra.ShellCompDirectiveNoFileComp
}

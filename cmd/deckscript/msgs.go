package deckscript

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Parse and check nanDeck style layout scripts"
	MsgParseShort      = "Parse a script and print its commands"
	MsgCheckShort      = "Check scripts for errors"
	MsgStatsShort      = "Count the directives of a script"
	MsgGenConfigShort  = "Print the default configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgVersionFormat = "deckscript version %s\n  commit: %s\n  built:  %s\n"
	MsgCheckFailed   = "%d of %d scripts failed"
	MsgNoCommand     = "no command specified"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration"
	MsgErrRenderer   = "failed to create renderer"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Configuration file (default is $XDG_CONFIG_HOME/deckscript/config.toml)"
	MsgFlagFormat   = "Output format: auto, term, text, json, yaml, toml or xml"
	MsgFlagEncoding = "Encoding of the script, e.g. utf-8 or windows-1251"
	MsgFlagStrict   = "Also fail on VISUAL blocks that are not closed, or closed twice"
	MsgFlagCurrent  = "Print the effective configuration instead of the defaults"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/parse-long.txt
	msgParseLongRaw string
	MsgParseLong    = strings.TrimSpace(msgParseLongRaw)

	//go:embed msgs/parse-example.txt
	msgParseExampleRaw string
	MsgParseExample    = strings.TrimRight(msgParseExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/stats-long.txt
	msgStatsLongRaw string
	MsgStatsLong    = strings.TrimSpace(msgStatsLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

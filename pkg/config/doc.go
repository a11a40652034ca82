// Package config loads the deckscript CLI configuration.
//
// Configuration is layered with koanf: the embedded defaults.toml, then the
// user file (TOML or YAML, picked by extension), then DECKSCRIPT_ environment
// variables. The parser itself takes no configuration.
package config

package inspect

import (
	"github.com/arthur-debert/deckscript/pkg/script"
)

// DirectiveCount pairs a directive with how often it appears
type DirectiveCount struct {
	Directive script.Directive `json:"directive" yaml:"directive" toml:"directive"`
	Count     int              `json:"count" yaml:"count" toml:"count"`
}

// Summary provides overall statistics for a parsed script
type Summary struct {
	Commands int `json:"commands" yaml:"commands" toml:"commands"`

	// Counts has one entry per known directive, in declaration order
	Counts []DirectiveCount `json:"counts" yaml:"counts" toml:"counts"`

	Blocks        int `json:"blocks" yaml:"blocks" toml:"blocks"`
	Images        int `json:"images" yaml:"images" toml:"images"`
	Texts         int `json:"texts" yaml:"texts" toml:"texts"`
	WordWrapTexts int `json:"word_wrap_texts" yaml:"word_wrap_texts" toml:"word_wrap_texts"`
	LooseElements int `json:"loose_elements" yaml:"loose_elements" toml:"loose_elements"`
	Problems      int `json:"problems" yaml:"problems" toml:"problems"`
}

// Count returns how many times d appears
func (s Summary) Count(d script.Directive) int {
	for _, c := range s.Counts {
		if c.Directive == d {
			return c.Count
		}
	}
	return 0
}

// Summarize counts directives, blocks and elements of commands
func Summarize(commands []script.Command) Summary {
	byDirective := make(map[script.Directive]int)
	summary := Summary{Commands: len(commands)}

	for _, cmd := range commands {
		byDirective[cmd.Directive()]++
		switch c := cmd.(type) {
		case script.ImageCmd:
			summary.Images++
		case script.TextFontCmd:
			summary.Texts++
			if c.VerticalAlign.WordWrap() {
				summary.WordWrapTexts++
			}
		}
	}

	for _, d := range script.Directives() {
		summary.Counts = append(summary.Counts, DirectiveCount{Directive: d, Count: byDirective[d]})
	}

	layout := Group(commands)
	summary.Blocks = len(layout.Blocks)
	summary.LooseElements = len(layout.Loose)
	summary.Problems = len(layout.Problems)

	return summary
}

// Package display holds the view models rendered by the ui renderers.
package display

import (
	"github.com/arthur-debert/deckscript/pkg/errors"
	"github.com/arthur-debert/deckscript/pkg/inspect"
	"github.com/arthur-debert/deckscript/pkg/script"
)

// ScriptResult is the output of `deckscript parse`
type ScriptResult struct {
	Source   string  `json:"source" yaml:"source" toml:"source"`
	Encoding string  `json:"encoding" yaml:"encoding" toml:"encoding"`
	Commands []Entry `json:"commands" yaml:"commands" toml:"commands"`
}

// Entry is one parsed command tagged with its directive, so serialized
// output can be read back without knowing the Go types
type Entry struct {
	Directive script.Directive `json:"directive" yaml:"directive" toml:"directive"`
	Value     script.Command   `json:"value" yaml:"value" toml:"value"`

	// Depth is the VISUAL nesting level, used for indentation only
	Depth int `json:"-" yaml:"-" toml:"-"`
}

// Fields returns the named values of the entry
func (e Entry) Fields() []Field {
	return Fields(e.Value)
}

// NewScriptResult wraps a parsed sequence for rendering
func NewScriptResult(source, encoding string, commands []script.Command) *ScriptResult {
	result := &ScriptResult{
		Source:   source,
		Encoding: encoding,
		Commands: make([]Entry, 0, len(commands)),
	}

	depth := 0
	for _, cmd := range commands {
		if _, ok := cmd.(script.EndVisualCmd); ok && depth > 0 {
			depth--
		}
		result.Commands = append(result.Commands, Entry{
			Directive: cmd.Directive(),
			Value:     cmd,
			Depth:     depth,
		})
		if _, ok := cmd.(script.VisualCmd); ok {
			depth++
		}
	}
	return result
}

// CheckResult is the output of `deckscript check`
type CheckResult struct {
	Strict bool        `json:"strict" yaml:"strict" toml:"strict"`
	Files  []FileCheck `json:"files" yaml:"files" toml:"files"`
	Failed int         `json:"failed" yaml:"failed" toml:"failed"`
}

// FileCheck is the outcome for one script
type FileCheck struct {
	Path string `json:"path" yaml:"path" toml:"path"`
	OK   bool   `json:"ok" yaml:"ok" toml:"ok"`

	// Line is the 1-based line of the first error, 0 when unknown
	Line    int                    `json:"line,omitempty" yaml:"line,omitempty" toml:"line,omitempty"`
	Code    errors.ErrorCode       `json:"code,omitempty" yaml:"code,omitempty" toml:"code,omitempty"`
	Message string                 `json:"message,omitempty" yaml:"message,omitempty" toml:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
}

// Add records a file outcome; err nil means the file passed
func (r *CheckResult) Add(path string, line int, err error) {
	check := FileCheck{Path: path, OK: err == nil}
	if err != nil {
		check.Line = line
		check.Code = errors.GetErrorCode(err)
		check.Message = err.Error()
		check.Details = errors.GetErrorDetails(err)
		r.Failed++
	}
	r.Files = append(r.Files, check)
}

// StatsResult is the output of `deckscript stats`
type StatsResult struct {
	Source          string `json:"source" yaml:"source" toml:"source"`
	inspect.Summary `yaml:",inline"`
}

// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), and the structured JSON, YAML,
// TOML and XML formats.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/deckscript/pkg/config"
	"github.com/arthur-debert/deckscript/pkg/errors"
	"github.com/arthur-debert/deckscript/pkg/ui/json"
	"github.com/arthur-debert/deckscript/pkg/ui/output"
	"github.com/arthur-debert/deckscript/pkg/ui/toml"
	"github.com/arthur-debert/deckscript/pkg/ui/xml"
	"github.com/arthur-debert/deckscript/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a display view model
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Options tune renderer creation
type Options struct {
	// Color is one of the config color modes; empty means auto
	Color string
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	return NewRendererWithOptions(format, w, Options{})
}

// NewRendererWithOptions is NewRenderer honouring a color mode. never turns
// term output into text; always forces term output even when piped.
func NewRendererWithOptions(format Format, w io.Writer, opts Options) (Renderer, error) {
	switch opts.Color {
	case config.ColorNever:
		if format == FormatAuto || format == FormatTerminal {
			format = FormatText
		}
	case config.ColorAlways:
		if format == FormatAuto {
			format = FormatTerminal
		}
	}

	switch format {
	case FormatAuto:
		if file, ok := w.(*os.File); ok {
			return NewRendererWithOptions(DetectFormat(file), w, opts)
		}
		// Not a file, default to terminal format
		return NewRendererWithOptions(FormatTerminal, w, opts)
	case FormatTerminal:
		r, err := output.NewRendererWithOptions(w, output.Options{ForceColor: opts.Color == config.ColorAlways})
		if err != nil {
			return nil, err
		}
		return styled{r}, nil
	case FormatText:
		r, err := output.NewRenderer(w, true)
		if err != nil {
			return nil, err
		}
		return styled{r}, nil
	case FormatJSON:
		return json.New(w)
	case FormatYAML:
		return yaml.New(w)
	case FormatTOML:
		return toml.New(w)
	case FormatXML:
		return xml.New(w)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// styled adapts the template renderer, whose messages take a style name
type styled struct {
	*output.Renderer
}

func (s styled) RenderMessage(msg string) error {
	return s.Renderer.RenderMessage("Info", msg)
}

// Package toml provides TOML output
package toml

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/deckscript/pkg/errors"
)

// Renderer writes values as TOML documents
type Renderer struct {
	output  io.Writer
	encoder *toml.Encoder
}

// New creates a new TOML renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := toml.NewEncoder(output)
	encoder.SetIndentTables(true)
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// RenderResult renders any result type as TOML. Values go-toml cannot
// encode, such as channels and funcs, fail with ErrRender.
func (r *Renderer) RenderResult(result interface{}) error {
	if err := r.encoder.Encode(result); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to encode TOML")
	}
	return nil
}

// RenderError renders an error as TOML
func (r *Renderer) RenderError(err error) error {
	obj := map[string]interface{}{"error": err.Error()}
	if code := errors.GetErrorCode(err); code != "" {
		obj["code"] = string(code)
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		obj["details"] = details
	}
	return r.encoder.Encode(obj)
}

// RenderMessage renders a simple message as TOML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}

// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/deckscript/pkg/errors"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// RenderResult renders any result type as JSON
func (r *Renderer) RenderResult(result interface{}) error {
	if err := r.encoder.Encode(result); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to encode JSON")
	}
	return nil
}

// RenderError renders an error as JSON, with its code and details when known
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(errorObject(err))
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}

func errorObject(err error) map[string]interface{} {
	obj := map[string]interface{}{"error": err.Error()}
	if code := errors.GetErrorCode(err); code != "" {
		obj["code"] = code
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		obj["details"] = details
	}
	return obj
}

package yaml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/deckscript/pkg/errors"
	"github.com/arthur-debert/deckscript/pkg/script"
	"github.com/arthur-debert/deckscript/pkg/ui/display"
)

func TestRenderer_RenderResult(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf)
	require.NoError(t, err)

	result := display.NewScriptResult("deck", "utf-8", []script.Command{
		script.LinkCmd{Link: script.Link{File: "deck", Sheet: "cards", HasSheet: true}},
	})
	require.NoError(t, r.RenderResult(result))

	var got struct {
		Source   string `yaml:"source"`
		Commands []struct {
			Directive string                 `yaml:"directive"`
			Value     map[string]interface{} `yaml:"value"`
		} `yaml:"commands"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "deck", got.Source)
	require.Len(t, got.Commands, 1)
	assert.Equal(t, "LINK", got.Commands[0].Directive)
	assert.Equal(t, "cards", got.Commands[0].Value["sheet"])
}

func TestRenderer_DocumentsPerCall(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderMessage("first"))
	require.NoError(t, r.RenderMessage("second"))

	dec := yaml.NewDecoder(strings.NewReader(buf.String()))
	var messages []string
	for {
		var doc map[string]string
		if err := dec.Decode(&doc); err != nil {
			break
		}
		messages = append(messages, doc["message"])
	}
	assert.Equal(t, []string{"first", "second"}, messages)
}

func TestRenderer_RenderError(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf)
	require.NoError(t, err)

	scriptErr := errors.New(errors.ErrMissingField, "BORDER expects 3 fields, got 2").
		WithDetails(map[string]interface{}{
			errors.DetailDirective: "BORDER",
			errors.DetailExpected:  3,
			errors.DetailActual:    2,
		})
	require.NoError(t, r.RenderError(scriptErr))

	var got struct {
		Error   string                 `yaml:"error"`
		Code    string                 `yaml:"code"`
		Details map[string]interface{} `yaml:"details"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, scriptErr.Error(), got.Error)
	assert.Equal(t, "MISSING_FIELD", got.Code)
	assert.Equal(t, "BORDER", got.Details["directive"])
	assert.Equal(t, 3, got.Details["expected"])
}

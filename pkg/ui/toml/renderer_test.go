package toml

import (
	"bytes"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/deckscript/pkg/errors"
	"github.com/arthur-debert/deckscript/pkg/ui/display"
)

func TestRenderer_RenderResult(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf)
	require.NoError(t, err)

	result := &display.CheckResult{Strict: true}
	result.Add("good.deck", 0, nil)
	result.Add("bad.deck", 3, errors.New(errors.ErrUnknownEnumValue, `PAGE: unknown orientation "SIDEWAYS"`).
		WithDetail(errors.DetailValue, "SIDEWAYS"))
	require.NoError(t, r.RenderResult(result))

	var got display.CheckResult
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.True(t, got.Strict)
	assert.Equal(t, 1, got.Failed)
	require.Len(t, got.Files, 2)
	assert.True(t, got.Files[0].OK)
	assert.Equal(t, 3, got.Files[1].Line)
	assert.Equal(t, errors.ErrUnknownEnumValue, got.Files[1].Code)
	assert.Equal(t, "SIDEWAYS", got.Files[1].Details["value"])
}

func TestRenderer_RenderResultUnsupported(t *testing.T) {
	r, err := New(&bytes.Buffer{})
	require.NoError(t, err)

	err = r.RenderResult(make(chan int))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
}

func TestRenderer_RenderErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New(errors.ErrUnknownDirective, "unknown directive").
		WithDetail(errors.DetailKeyword, "FOO")))

	var got struct {
		Error   string            `toml:"error"`
		Code    string            `toml:"code"`
		Details map[string]string `toml:"details"`
	}
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "UNKNOWN_DIRECTIVE", got.Code)
	assert.Equal(t, "FOO", got.Details["keyword"])

	buf.Reset()
	require.NoError(t, r.RenderMessage("done"))
	var msg map[string]string
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &msg))
	assert.Equal(t, map[string]string{"message": "done"}, msg)
}

package ui_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/deckscript/pkg/errors"
	"github.com/arthur-debert/deckscript/pkg/inspect"
	"github.com/arthur-debert/deckscript/pkg/script"
	"github.com/arthur-debert/deckscript/pkg/testutil"
	"github.com/arthur-debert/deckscript/pkg/ui"
	"github.com/arthur-debert/deckscript/pkg/ui/display"
)

func fixture(t *testing.T) []script.Command {
	return testutil.FullExampleCommands(t)
}

func directives(cmds []script.Command) []string {
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, string(c.Directive()))
	}
	return out
}

func renderWith(t *testing.T, format ui.Format, result interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	r, err := ui.NewRenderer(format, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(result))
	return buf.String()
}

type decodedScript struct {
	Source   string `json:"source" yaml:"source" toml:"source"`
	Commands []struct {
		Directive string                 `json:"directive" yaml:"directive" toml:"directive"`
		Value     map[string]interface{} `json:"value" yaml:"value" toml:"value"`
	} `json:"commands" yaml:"commands" toml:"commands"`
}

func (d decodedScript) directives() []string {
	out := make([]string, 0, len(d.Commands))
	for _, c := range d.Commands {
		out = append(out, c.Directive)
	}
	return out
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{
		ui.FormatAuto, ui.FormatTerminal, ui.FormatText,
		ui.FormatJSON, ui.FormatYAML, ui.FormatTOML, ui.FormatXML,
	} {
		t.Run(format.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	_, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestStructuredFormats_DecodeBack(t *testing.T) {
	cmds := fixture(t)
	result := display.NewScriptResult("full_example.deck", "utf-8", cmds)
	want := directives(cmds)

	t.Run("json", func(t *testing.T) {
		var got decodedScript
		require.NoError(t, json.Unmarshal([]byte(renderWith(t, ui.FormatJSON, result)), &got))
		assert.Equal(t, want, got.directives())
		assert.Equal(t, "full_example.deck", got.Source)
		assert.Equal(t, "MM", got.Commands[2].Value["unit"])
		assert.Equal(t, "-12%", got.Commands[14].Value["top"])
		assert.Equal(t, "WWBOTTOM", got.Commands[14].Value["vertical_align"])
	})

	t.Run("yaml", func(t *testing.T) {
		var got decodedScript
		require.NoError(t, yaml.Unmarshal([]byte(renderWith(t, ui.FormatYAML, result)), &got))
		assert.Equal(t, want, got.directives())
		assert.Equal(t, "cards", got.Commands[1].Value["sheet"])
		assert.Equal(t, "#cc9900", got.Commands[7].Value["color"])
	})

	t.Run("toml", func(t *testing.T) {
		var got decodedScript
		require.NoError(t, toml.Unmarshal([]byte(renderWith(t, ui.FormatTOML, result)), &got))
		assert.Equal(t, want, got.directives())
		assert.Equal(t, "PORTRAIT", got.Commands[3].Value["orientation"])
	})

	t.Run("xml", func(t *testing.T) {
		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromString(renderWith(t, ui.FormatXML, result)))

		commands := doc.FindElements("/script/command")
		require.Len(t, commands, len(want))
		for i, el := range commands {
			assert.Equal(t, want[i], el.SelectAttrValue("directive", ""))
		}
		assert.Equal(t, "207", commands[3].SelectAttrValue("width", ""))
		assert.Equal(t, "1SJdrYEP70GkcQ9vzmA7J-k4THJnsiQdGIxvZtUSJcwE", commands[1].SelectAttrValue("file", ""))
	})
}

func TestAllFormats_NameEveryCommand(t *testing.T) {
	cmds := fixture(t)
	result := display.NewScriptResult("full_example.deck", "utf-8", cmds)

	for _, format := range []ui.Format{ui.FormatText, ui.FormatJSON, ui.FormatYAML, ui.FormatTOML, ui.FormatXML} {
		t.Run(format.String(), func(t *testing.T) {
			out := renderWith(t, format, result)
			assert.Equal(t, 8, strings.Count(out, "TEXTFONT"), "every TEXTFONT is named")
			for _, d := range script.Directives() {
				assert.Contains(t, out, string(d))
			}
		})
	}
}

func TestStructuredFormats_Stats(t *testing.T) {
	result := &display.StatsResult{Source: "deck", Summary: inspect.Summarize(fixture(t))}

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(renderWith(t, ui.FormatJSON, result)), &decoded))
	assert.Equal(t, float64(16), decoded["commands"])
	assert.Equal(t, float64(1), decoded["blocks"])
	assert.Equal(t, "deck", decoded["source"])

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(renderWith(t, ui.FormatXML, result)))
	assert.Equal(t, "8", doc.FindElement("/stats/count[@directive='TEXTFONT']").Text())
}

func TestStructuredFormats_Check(t *testing.T) {
	result := &display.CheckResult{}
	_, err := script.Parse("PAGE=1,x,PORTRAIT")
	require.Error(t, err)
	result.Add("bad.deck", 1, err)

	var decoded struct {
		Failed int `yaml:"failed"`
		Files  []struct {
			Code    string                 `yaml:"code"`
			Line    int                    `yaml:"line"`
			Details map[string]interface{} `yaml:"details"`
		} `yaml:"files"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(renderWith(t, ui.FormatYAML, result)), &decoded))
	assert.Equal(t, 1, decoded.Failed)
	assert.Equal(t, "MALFORMED_NUMBER", decoded.Files[0].Code)
	assert.Equal(t, "height", decoded.Files[0].Details["field"])

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(renderWith(t, ui.FormatXML, result)))
	file := doc.FindElement("/check/file")
	require.NotNil(t, file)
	assert.Equal(t, "MALFORMED_NUMBER", file.SelectAttrValue("code", ""))
	assert.Equal(t, "x", doc.FindElement("/check/file/detail[@name='text']").SelectAttrValue("value", ""))
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrUnknownDirective, "unknown directive \"FOO\"").
		WithDetail(errors.DetailKeyword, "FOO")

	tests := []struct {
		format ui.Format
		want   []string
	}{
		{ui.FormatText, []string{"Error:", "UNKNOWN_DIRECTIVE"}},
		{ui.FormatJSON, []string{`"code": "UNKNOWN_DIRECTIVE"`, `"keyword": "FOO"`}},
		{ui.FormatYAML, []string{"code: UNKNOWN_DIRECTIVE", "keyword: FOO"}},
		{ui.FormatTOML, []string{"UNKNOWN_DIRECTIVE", "keyword", "FOO"}},
		{ui.FormatXML, []string{`<error code="UNKNOWN_DIRECTIVE">`, `name="keyword"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			r, rerr := ui.NewRenderer(tt.format, &buf)
			require.NoError(t, rerr)
			require.NoError(t, r.RenderError(err))
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestNewRendererWithOptions_ColorNever(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRendererWithOptions(ui.FormatTerminal, &buf, ui.Options{Color: "never"})
	require.NoError(t, err)
	require.NoError(t, r.RenderMessage("plain"))
	assert.Equal(t, "plain\n", buf.String())
}

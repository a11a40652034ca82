package lipbalm_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/deckscript/pkg/ui/lipbalm"
)

func TestMain(m *testing.M) {
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(io.Discard))
	m.Run()
}

var testStyles = lipbalm.StyleMap{
	"Keyword": lipgloss.NewStyle().Bold(true),
	"Value":   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	"Error":   lipgloss.NewStyle().Foreground(lipgloss.Color("red")),
}

func withProfile(t *testing.T, profile termenv.Profile) {
	t.Helper()
	var buf bytes.Buffer
	renderer := lipgloss.NewRenderer(&buf)
	renderer.SetColorProfile(profile)
	lipbalm.SetDefaultRenderer(renderer)
}

func TestRender(t *testing.T) {
	withProfile(t, termenv.TrueColor)

	t.Run("template then tags", func(t *testing.T) {
		data := struct{ Directive, Payload string }{"UNIT", "MM"}
		result, err := lipbalm.Render(`<Keyword>{{.Directive}}</Keyword>=<Value>{{.Payload}}</Value>`, data, testStyles)
		require.NoError(t, err)
		assert.Equal(t, testStyles["Keyword"].Render("UNIT")+"="+testStyles["Value"].Render("MM"), result)
	})

	t.Run("parse error", func(t *testing.T) {
		_, err := lipbalm.Render(`<Keyword>{{.Directive</Keyword>`, nil, testStyles)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "template")
	})

	t.Run("execution error", func(t *testing.T) {
		_, err := lipbalm.Render(`{{.Missing}}`, struct{ Directive string }{}, testStyles)
		assert.Error(t, err)
	})

	t.Run("nil data", func(t *testing.T) {
		result, err := lipbalm.Render(`<Keyword>ENDVISUAL</Keyword>`, nil, testStyles)
		require.NoError(t, err)
		assert.Equal(t, testStyles["Keyword"].Render("ENDVISUAL"), result)
	})
}

func TestExpandTags(t *testing.T) {
	tests := []struct {
		name    string
		profile termenv.Profile
		input   string
		want    string
	}{
		{
			name:    "nested tags",
			profile: termenv.TrueColor,
			input:   `<Keyword>PAGE <Value>207</Value></Keyword>`,
			want:    testStyles["Keyword"].Render("PAGE " + testStyles["Value"].Render("207")),
		},
		{
			name:    "unknown tag keeps its text",
			profile: termenv.TrueColor,
			input:   `<Unknown>LINK</Unknown>`,
			want:    "LINK",
		},
		{
			name:    "no-format hidden with color",
			profile: termenv.TrueColor,
			input:   `<Error>failed</Error><no-format> (error)</no-format>`,
			want:    testStyles["Error"].Render("failed"),
		},
		{
			name:    "no-format shown without color",
			profile: termenv.Ascii,
			input:   `<Error>failed</Error><no-format> (error)</no-format>`,
			want:    "failed (error)",
		},
		{
			name:    "no styles without color",
			profile: termenv.Ascii,
			input:   "<Keyword>UNIT</Keyword>=<Value>MM</Value>\n",
			want:    "UNIT=MM\n",
		},
		{
			name:    "escaped entities are decoded",
			profile: termenv.Ascii,
			input:   `<Value>&quot;a&amp;b&quot; &lt;x&gt;</Value>`,
			want:    `"a&b" <x>`,
		},
		{
			name:    "malformed input is returned unchanged",
			profile: termenv.TrueColor,
			input:   `<Value>a & b</Value>`,
			want:    `<Value>a & b</Value>`,
		},
		{
			name:    "unclosed tag is returned unchanged",
			profile: termenv.TrueColor,
			input:   `<Keyword>UNIT`,
			want:    `<Keyword>UNIT`,
		},
		{
			name:    "empty",
			profile: termenv.TrueColor,
			input:   "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withProfile(t, tt.profile)
			result, err := lipbalm.ExpandTags(tt.input, testStyles)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestStripTags(t *testing.T) {
	tests := map[string]string{
		"<Keyword>UNIT</Keyword>=<Value>MM</Value>":         "UNIT=MM",
		"<a><b><c>deep</c></b></a>":                         "deep",
		"first<br/>second":                                  "firstsecond",
		"<Line>one</Line>\n<Line>two</Line>":                "one\ntwo",
		"<Success>ok</Success><no-format> (ok)</no-format>": "ok (ok)",
		"<Value>  spaced  </Value>":                         "  spaced  ",
		"not <valid":                                        "not <valid",
		"":                                                  "",
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, lipbalm.StripTags(input))
		})
	}
}

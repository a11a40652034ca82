package output

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/deckscript/pkg/errors"
	"github.com/arthur-debert/deckscript/pkg/inspect"
	"github.com/arthur-debert/deckscript/pkg/logging"
	"github.com/arthur-debert/deckscript/pkg/ui/display"
	"github.com/arthur-debert/deckscript/pkg/ui/lipbalm"
	"github.com/arthur-debert/deckscript/pkg/ui/output/styles"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var funcs = template.FuncMap{
	"inc":    func(i int) int { return i + 1 },
	"indent": func(depth int) string { return strings.Repeat("  ", depth) },
}

// Renderer orchestrates the template-based output rendering pipeline.
//
// Rendering has two phases:
//  1. Template expansion: Go templates process the view model
//  2. Style application: lipbalm converts the style tags to ANSI codes, or
//     strips them when noColor is set
type Renderer struct {
	templates *template.Template
	writer    io.Writer
	noColor   bool
}

// Options configure a Renderer
type Options struct {
	// NoColor strips all style tags
	NoColor bool
	// ForceColor applies styles even when w is not a color terminal
	ForceColor bool
}

// NewRenderer creates a Renderer writing to w. With noColor all style tags are
// stripped; otherwise color support is detected from w.
func NewRenderer(w io.Writer, noColor bool) (*Renderer, error) {
	return NewRendererWithOptions(w, Options{NoColor: noColor})
}

// NewRendererWithOptions creates a Renderer writing to w
func NewRendererWithOptions(w io.Writer, opts Options) (*Renderer, error) {
	log := logging.GetLogger("output.Renderer")
	noColor := opts.NoColor

	log.Debug().
		Bool("noColor", noColor).
		Bool("forceColor", opts.ForceColor).
		Str("NO_COLOR_env", os.Getenv("NO_COLOR")).
		Str("TERM", os.Getenv("TERM")).
		Msg("Creating renderer with color settings")

	if !noColor {
		renderer := lipgloss.NewRenderer(w)
		if opts.ForceColor {
			renderer.SetColorProfile(termenv.ANSI256)
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
		lipbalm.SetDefaultRenderer(renderer)
		log.Debug().
			Str("colorProfile", fmt.Sprintf("%v", renderer.ColorProfile())).
			Msg("Lipgloss renderer created")
	}

	tmpl, err := template.New("output").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to parse templates")
	}

	return &Renderer{
		templates: tmpl,
		writer:    w,
		noColor:   noColor,
	}, nil
}

// RenderResult renders one of the display view models
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ScriptResult:
		return r.execute("script.tmpl", v)
	case *display.CheckResult:
		return r.execute("check.tmpl", v)
	case *display.StatsResult:
		if err := r.execute("stats.tmpl", v); err != nil {
			return err
		}
		return r.renderCounts(v.Counts)
	}
	_, err := fmt.Fprintf(r.writer, "%+v\n", result)
	return err
}

// RenderError renders an error message with appropriate styling
func (r *Renderer) RenderError(err error) error {
	return r.write("<Error>Error:</Error> " + template.HTMLEscapeString(err.Error()))
}

// RenderMessage renders a message with the named style
func (r *Renderer) RenderMessage(style, message string) error {
	return r.write(fmt.Sprintf(`<%s>%s</%s>`, style, template.HTMLEscapeString(message), style))
}

func (r *Renderer) execute(name string, data interface{}) error {
	log := logging.GetLogger("output.Renderer")

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to execute template %s", name)
	}
	log.Trace().
		Str("template", name).
		Int("bytes", buf.Len()).
		Msg("Template executed")

	return r.write(buf.String())
}

// write applies or strips style tags and writes a line
func (r *Renderer) write(tagged string) error {
	var out string
	if r.noColor {
		out = lipbalm.StripTags(tagged)
	} else {
		var err error
		out, err = lipbalm.ExpandTags(tagged, styles.StyleRegistry)
		if err != nil {
			return errors.Wrap(err, errors.ErrRender, "failed to expand tags")
		}
	}
	_, err := fmt.Fprintln(r.writer, out)
	return err
}

// renderCounts prints the per-directive counts as a pterm table
func (r *Renderer) renderCounts(counts []inspect.DirectiveCount) error {
	data := pterm.TableData{{"Directive", "Count"}}
	for _, c := range counts {
		data = append(data, []string{string(c.Directive), strconv.Itoa(c.Count)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to render table")
	}
	if r.noColor {
		table = ansi.Strip(table)
	}
	_, err = fmt.Fprintln(r.writer, "\n"+table)
	return err
}

package lipbalm

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// noFormatTag wraps content shown only when styles are not applied
const noFormatTag = "no-format"

// rootTag wraps the input so fragments with several top level tags parse
const rootTag = "lipbalm-root"

// StyleMap maps tag names to styles
type StyleMap map[string]lipgloss.Style

var (
	mu              sync.RWMutex
	defaultRenderer = lipgloss.DefaultRenderer()
)

// SetDefaultRenderer sets the renderer whose color profile decides whether
// styles are applied
func SetDefaultRenderer(r *lipgloss.Renderer) {
	mu.Lock()
	defer mu.Unlock()
	defaultRenderer = r
}

func colorEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return defaultRenderer.ColorProfile() != termenv.Ascii
}

// Render executes tmpl as a Go template with data, then expands its tags
func Render(tmpl string, data interface{}, styles StyleMap) (string, error) {
	t, err := template.New("lipbalm").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return ExpandTags(buf.String(), styles)
}

// ExpandTags replaces every tag with its style. Unknown tags keep their text.
// Input that is not well formed XML is returned unchanged.
func ExpandTags(input string, styles StyleMap) (string, error) {
	root, ok := parse(input)
	if !ok {
		return input, nil
	}
	return expand(root, styles, colorEnabled()), nil
}

// StripTags removes all tags and keeps their text, no-format content included
func StripTags(input string) string {
	root, ok := parse(input)
	if !ok {
		return input
	}
	return expand(root, nil, false)
}

func parse(input string) (*etree.Element, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<" + rootTag + ">" + input + "</" + rootTag + ">"); err != nil {
		return nil, false
	}
	root := doc.Root()
	if root == nil {
		return nil, false
	}
	return root, true
}

func expand(el *etree.Element, styles StyleMap, color bool) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			if t.Tag == noFormatTag {
				if !color {
					sb.WriteString(expand(t, styles, color))
				}
				continue
			}
			inner := expand(t, styles, color)
			style, ok := styles[t.Tag]
			if !color || !ok {
				sb.WriteString(inner)
				continue
			}
			sb.WriteString(style.Render(inner))
		}
	}
	return sb.String()
}

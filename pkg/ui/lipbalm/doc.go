/*
Package lipbalm provides a simple template engine for rich terminal rendering.

Lipbalm combines Go's text/template with lipgloss styling through XML-like tags,
enabling declarative terminal output that automatically adapts to terminal capabilities.

# Core Functions

The package offers three main functions:
  - Render: Processes Go templates then expands style tags
  - ExpandTags: Only expands style tags (no template processing)
  - StripTags: Removes all style tags for plain text output

# Usage with Go templating

	styles := lipbalm.StyleMap{
		"Keyword": lipgloss.NewStyle().Bold(true),
		"Value":   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
	template := `<Keyword>{{.Directive}}</Keyword>=<Value>{{.Payload}}</Value>`
	data := struct {
		Directive string
		Payload   string
	}{
		Directive: "UNIT",
		Payload:   "MM",
	}
	output, err := lipbalm.Render(template, data, styles)
	fmt.Println(output)

# Usage for tag expansion only

	styles := lipbalm.StyleMap{"Keyword": lipgloss.NewStyle().Bold(true)}
	input := `<Keyword>ENDVISUAL</Keyword>`
	output, err := lipbalm.ExpandTags(input, styles)
	fmt.Println(output)

# Plain text output

	input := `<Keyword>UNIT</Keyword>=<Value>MM</Value>`
	plain := lipbalm.StripTags(input) // "UNIT=MM"

# Tags

Tags are used to apply styles. The tag name must correspond to a key in the
StyleMap passed to the Render or ExpandTags function.

	<my-style>This text will be styled.</my-style>

# Special Tags

The <no-format> tag only renders when the terminal doesn't support color:

	<Success>OK</Success><no-format> (ok)</no-format>

In the example above, " (ok)" is only rendered in plain text mode.

# Parsing

Tags are read with etree. Text that is not well formed XML (a stray '&' or
'<') is returned as is, so templates escape the values they interpolate.
Whether styles apply is decided by the color profile of the renderer set with
SetDefaultRenderer.
*/
package lipbalm

package display

import (
	"strconv"

	"github.com/arthur-debert/deckscript/pkg/script"
)

// FieldKind selects how a value is styled
type FieldKind int

const (
	KindText FieldKind = iota
	KindNumber
	KindEnum
	KindPath
)

// Field is one named value of a command
type Field struct {
	Name  string
	Value string
	Kind  FieldKind
}

// Style is the style tag used for the value
func (f Field) Style() string {
	switch f.Kind {
	case KindNumber:
		return "Number"
	case KindEnum:
		return "Enum"
	case KindPath:
		return "Path"
	}
	return "Value"
}

func text(name, value string) Field { return Field{Name: name, Value: value, Kind: KindText} }
func path(name, value string) Field { return Field{Name: name, Value: value, Kind: KindPath} }

func enum(name string, value interface{ String() string }) Field {
	return Field{Name: name, Value: value.String(), Kind: KindEnum}
}

func number[T ~int32 | ~uint32 | ~uint8](name string, value T) Field {
	return Field{Name: name, Value: strconv.FormatInt(int64(value), 10), Kind: KindNumber}
}

func numeric(name string, value script.Numeric) Field {
	return Field{Name: name, Value: value.String(), Kind: KindNumber}
}

// Fields flattens a command into its named values, in script field order.
// ENDVISUAL has none.
func Fields(cmd script.Command) []Field {
	switch c := cmd.(type) {
	case script.LinkMultiCmd:
		return []Field{text("key", c.Key)}
	case script.LinkCmd:
		fields := []Field{path("file", c.File)}
		if c.HasSheet {
			fields = append(fields, text("sheet", c.Sheet))
		}
		return fields
	case script.UnitCmd:
		return []Field{enum("unit", c.Unit)}
	case script.PageCmd:
		return []Field{
			number("width", c.Width),
			number("height", c.Height),
			enum("orientation", c.Orientation),
		}
	case script.BorderCmd:
		return []Field{
			enum("type", c.Type),
			text("color", string(c.Color)),
			number("size", c.Size),
		}
	case script.VisualCmd:
		return []Field{
			number("horizontal_step", c.HorizontalStep),
			number("vertical_step", c.VerticalStep),
		}
	case script.ImageCmd:
		return placementFields(c.Placement)
	case script.TextFontCmd:
		return append(placementFields(c.Placement),
			enum("horizontal_align", c.HorizontalAlign),
			enum("vertical_align", c.VerticalAlign),
			number("rotation", c.Rotation),
			number("alpha", c.Alpha),
			text("font_name", c.FontName),
			number("font_size", c.FontSize),
			text("effect", string(c.Effect)),
			text("color", string(c.Color)),
		)
	}
	return nil
}

func placementFields(p script.Placement) []Field {
	return []Field{
		path("source_path", p.SourcePath),
		text("field_name", p.FieldName),
		numeric("left", p.Left),
		numeric("top", p.Top),
		numeric("width", p.Width),
		numeric("height", p.Height),
	}
}

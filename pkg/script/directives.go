package script

import (
	"strings"
)

// Number of comma separated fields each directive needs. LINKMULTI, LINK and
// UNIT take their payload whole.
const (
	pageFields     = 3
	borderFields   = 3
	visualFields   = 3
	imageFields    = 6
	textFontFields = 13
)

// fields walks the comma separated payload of one directive. The first
// conversion failure sticks in err and later reads return zero values, so a
// directive parser can read every field and check err once.
type fields struct {
	directive Directive
	values    []string
	err       error
}

// splitFields cuts payload at every ',' and trims each field. It fails with
// MISSING_FIELD when fewer than required fields are present; extra trailing
// fields are kept, and all directives but TEXTFONT ignore them.
func splitFields(d Directive, payload string, required int) (*fields, error) {
	values := strings.Split(payload, ",")
	if len(values) < required {
		return nil, missingField(d, required, len(values))
	}
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	return &fields{directive: d, values: values}, nil
}

func (f *fields) has(i int) bool {
	return i < len(f.values)
}

func (f *fields) text(i int) string {
	return f.values[i]
}

func (f *fields) numeric(i int, name string) Numeric {
	if f.err != nil {
		return Numeric{}
	}
	n, err := parseNumeric(f.values[i])
	if err != nil {
		f.err = malformedNumber(f.directive, name, f.values[i], err)
	}
	return n
}

func (f *fields) i32(i int, name string) int32 {
	if f.err != nil {
		return 0
	}
	v, err := parseInt32(f.values[i])
	if err != nil {
		f.err = malformedNumber(f.directive, name, f.values[i], err)
	}
	return v
}

func (f *fields) u32(i int, name string) uint32 {
	if f.err != nil {
		return 0
	}
	v, err := parseUint32(f.values[i])
	if err != nil {
		f.err = malformedNumber(f.directive, name, f.values[i], err)
	}
	return v
}

func (f *fields) u8(i int, name string) uint8 {
	if f.err != nil {
		return 0
	}
	v, err := parseUint8(f.values[i])
	if err != nil {
		f.err = malformedNumber(f.directive, name, f.values[i], err)
	}
	return v
}

// enum runs one of the Parse* enum functions; their errors already name the
// directive and field
func enum[T any](f *fields, i int, parse func(string) (T, error)) T {
	var zero T
	if f.err != nil {
		return zero
	}
	v, err := parse(f.values[i])
	if err != nil {
		f.err = err
		return zero
	}
	return v
}

// placement reads the six leading fields shared by IMAGE and TEXTFONT
func (f *fields) placement() Placement {
	return Placement{
		SourcePath: parseQuotedPath(f.text(0)),
		FieldName:  parseBracketName(f.text(1)),
		Left:       f.numeric(2, "left"),
		Top:        f.numeric(3, "top"),
		Width:      f.numeric(4, "width"),
		Height:     f.numeric(5, "height"),
	}
}

func parseLinkMulti(payload string) (Command, error) {
	return LinkMultiCmd{Key: payload}, nil
}

func parseLinkDirective(payload string) (Command, error) {
	link, err := ParseLink(payload)
	if err != nil {
		return nil, err
	}
	return LinkCmd{Link: link}, nil
}

func parseUnitDirective(payload string) (Command, error) {
	unit, err := ParseUnit(payload)
	if err != nil {
		return nil, err
	}
	return UnitCmd{Unit: unit}, nil
}

func parsePage(payload string) (Command, error) {
	f, err := splitFields(DirectivePage, payload, pageFields)
	if err != nil {
		return nil, err
	}
	page := Page{
		Width:       f.u32(0, "width"),
		Height:      f.u32(1, "height"),
		Orientation: enum(f, 2, ParseOrientation),
	}
	if f.err != nil {
		return nil, f.err
	}
	return PageCmd{Page: page}, nil
}

func parseBorder(payload string) (Command, error) {
	f, err := splitFields(DirectiveBorder, payload, borderFields)
	if err != nil {
		return nil, err
	}
	border := Border{
		Type:  enum(f, 0, ParseBorderType),
		Color: parseColor(f.text(1)),
		Size:  f.u8(2, "size"),
	}
	if f.err != nil {
		return nil, f.err
	}
	return BorderCmd{Border: border}, nil
}

// parseVisual ignores field 0, a reserved slot
func parseVisual(payload string) (Command, error) {
	f, err := splitFields(DirectiveVisual, payload, visualFields)
	if err != nil {
		return nil, err
	}
	visual := Visual{
		HorizontalStep: f.u32(1, "horizontal_step"),
		VerticalStep:   f.u32(2, "vertical_step"),
	}
	if f.err != nil {
		return nil, f.err
	}
	return VisualCmd{Visual: visual}, nil
}

func parseImage(payload string) (Command, error) {
	f, err := splitFields(DirectiveImage, payload, imageFields)
	if err != nil {
		return nil, err
	}
	image := Image{Placement: f.placement()}
	if f.err != nil {
		return nil, f.err
	}
	return ImageCmd{Image: image}, nil
}

// parseTextFont reads 13 fields plus an optional 14th color. A 15th field
// is an error rather than silently dropped.
func parseTextFont(payload string) (Command, error) {
	f, err := splitFields(DirectiveTextFont, payload, textFontFields)
	if err != nil {
		return nil, err
	}
	if len(f.values) > textFontFields+1 {
		return nil, tooManyFields(DirectiveTextFont, textFontFields+1, len(f.values))
	}
	text := TextFont{
		Placement:       f.placement(),
		HorizontalAlign: enum(f, 6, ParseHorizontalAlign),
		VerticalAlign:   enum(f, 7, ParseVerticalAlign),
		Rotation:        f.i32(8, "rotation"),
		Alpha:           f.u32(9, "alpha"),
		FontName:        f.text(10),
		FontSize:        f.u8(11, "font_size"),
		Effect:          parseEffect(f.text(12)),
		Color:           DefaultTextColor,
	}
	if f.has(textFontFields) {
		text.Color = parseColor(f.text(textFontFields))
	}
	if f.err != nil {
		return nil, f.err
	}
	return TextFontCmd{TextFont: text}, nil
}

func parseEndVisual(string) (Command, error) {
	return EndVisualCmd{}, nil
}

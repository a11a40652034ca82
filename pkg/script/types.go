package script

// Directive is the keyword at the start of a script line
type Directive string

const (
	DirectiveLinkMulti Directive = "LINKMULTI"
	DirectiveLink      Directive = "LINK"
	DirectiveUnit      Directive = "UNIT"
	DirectivePage      Directive = "PAGE"
	DirectiveBorder    Directive = "BORDER"
	DirectiveVisual    Directive = "VISUAL"
	DirectiveImage     Directive = "IMAGE"
	DirectiveTextFont  Directive = "TEXTFONT"
	DirectiveEndVisual Directive = "ENDVISUAL"
)

// Directives lists every keyword the parser accepts
func Directives() []Directive {
	return []Directive{
		DirectiveLinkMulti,
		DirectiveLink,
		DirectiveUnit,
		DirectivePage,
		DirectiveBorder,
		DirectiveVisual,
		DirectiveImage,
		DirectiveTextFont,
		DirectiveEndVisual,
	}
}

// Unit is the measurement unit of page geometry
type Unit int

const (
	UnitMM Unit = iota
	UnitSM
	UnitDM
)

func (u Unit) String() string {
	switch u {
	case UnitMM:
		return "MM"
	case UnitSM:
		return "SM"
	case UnitDM:
		return "DM"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler
func (u Unit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	v, err := ParseUnit(string(text))
	if err == nil {
		*u = v
	}
	return err
}

// Orientation of the printed page
type Orientation int

const (
	Portrait Orientation = iota
	// Album is landscape
	Album
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "PORTRAIT"
	case Album:
		return "ALBUM"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler
func (o Orientation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (o *Orientation) UnmarshalText(text []byte) error {
	v, err := ParseOrientation(string(text))
	if err == nil {
		*o = v
	}
	return err
}

// BorderType is the shape of the card border
type BorderType int

const (
	BorderRectangle BorderType = iota
	BorderRounded
)

func (b BorderType) String() string {
	switch b {
	case BorderRectangle:
		return "RECTANGLE"
	case BorderRounded:
		return "ROUNDED"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler
func (b BorderType) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (b *BorderType) UnmarshalText(text []byte) error {
	v, err := ParseBorderType(string(text))
	if err == nil {
		*b = v
	}
	return err
}

// HorizontalAlign anchors text inside its box
type HorizontalAlign int

const (
	HAlignLeft HorizontalAlign = iota
	HAlignCenter
	HAlignRight
)

func (a HorizontalAlign) String() string {
	switch a {
	case HAlignLeft:
		return "LEFT"
	case HAlignCenter:
		return "CENTER"
	case HAlignRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler
func (a HorizontalAlign) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (a *HorizontalAlign) UnmarshalText(text []byte) error {
	v, err := ParseHorizontalAlign(string(text))
	if err == nil {
		*a = v
	}
	return err
}

// VerticalAlign anchors text inside its box. The WW variants take the number
// of wrapped lines into account and only apply to text.
type VerticalAlign int

const (
	VAlignTop VerticalAlign = iota
	VAlignCenter
	VAlignBottom
	VAlignWwTop
	VAlignWwCenter
	VAlignWwBottom
)

func (a VerticalAlign) String() string {
	switch a {
	case VAlignTop:
		return "TOP"
	case VAlignCenter:
		return "CENTER"
	case VAlignBottom:
		return "BOTTOM"
	case VAlignWwTop:
		return "WWTOP"
	case VAlignWwCenter:
		return "WWCENTER"
	case VAlignWwBottom:
		return "WWBOTTOM"
	default:
		return "UNKNOWN"
	}
}

// WordWrap reports whether a is one of the WW anchors
func (a VerticalAlign) WordWrap() bool {
	return a == VAlignWwTop || a == VAlignWwCenter || a == VAlignWwBottom
}

// MarshalText implements encoding.TextMarshaler
func (a VerticalAlign) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (a *VerticalAlign) UnmarshalText(text []byte) error {
	v, err := ParseVerticalAlign(string(text))
	if err == nil {
		*a = v
	}
	return err
}

// Color is a lowercased color token, usually #rrggbb
type Color string

// DefaultTextColor is used when a TEXTFONT line has no color field
const DefaultTextColor Color = "black"

// Effect is a lowercased text style tag owned by the renderer
type Effect string

// Page geometry in the document Unit
type Page struct {
	Width       uint32      `json:"width" yaml:"width" toml:"width"`
	Height      uint32      `json:"height" yaml:"height" toml:"height"`
	Orientation Orientation `json:"orientation" yaml:"orientation" toml:"orientation"`
}

// Border drawn around each card
type Border struct {
	Type  BorderType `json:"type" yaml:"type" toml:"type"`
	Color Color      `json:"color" yaml:"color" toml:"color"`
	Size  uint8      `json:"size" yaml:"size" toml:"size"`
}

// Visual starts a repeated layout block; the steps are the tiling stride
type Visual struct {
	HorizontalStep uint32 `json:"horizontal_step" yaml:"horizontal_step" toml:"horizontal_step"`
	VerticalStep   uint32 `json:"vertical_step" yaml:"vertical_step" toml:"vertical_step"`
}

// Placement is the geometry shared by images and text
type Placement struct {
	// SourcePath is the data source column or template, quotes removed
	SourcePath string `json:"source_path" yaml:"source_path" toml:"source_path"`
	// FieldName is the placeholder name, brackets removed
	FieldName string  `json:"field_name" yaml:"field_name" toml:"field_name"`
	Left      Numeric `json:"left" yaml:"left" toml:"left"`
	Top       Numeric `json:"top" yaml:"top" toml:"top"`
	Width     Numeric `json:"width" yaml:"width" toml:"width"`
	Height    Numeric `json:"height" yaml:"height" toml:"height"`
}

// Image places a picture from the data source
type Image struct {
	Placement `yaml:",inline"`
}

// TextFont places a text field from the data source
type TextFont struct {
	Placement       `yaml:",inline"`
	HorizontalAlign HorizontalAlign `json:"horizontal_align" yaml:"horizontal_align" toml:"horizontal_align"`
	VerticalAlign   VerticalAlign   `json:"vertical_align" yaml:"vertical_align" toml:"vertical_align"`
	// Rotation in degrees
	Rotation int32 `json:"rotation" yaml:"rotation" toml:"rotation"`
	// Alpha is the opacity, 0-100 by convention but not checked
	Alpha    uint32 `json:"alpha" yaml:"alpha" toml:"alpha"`
	FontName string `json:"font_name" yaml:"font_name" toml:"font_name"`
	FontSize uint8  `json:"font_size" yaml:"font_size" toml:"font_size"`
	Effect   Effect `json:"effect" yaml:"effect" toml:"effect"`
	Color    Color  `json:"color" yaml:"color" toml:"color"`
}

// Link points at an external data source, optionally at one sheet of it
type Link struct {
	File     string `json:"file" yaml:"file" toml:"file"`
	Sheet    string `json:"sheet,omitempty" yaml:"sheet,omitempty" toml:"sheet,omitempty"`
	HasSheet bool   `json:"has_sheet" yaml:"has_sheet" toml:"has_sheet"`
}

// Command is one parsed script line. The set of implementations is closed:
// LinkMultiCmd, LinkCmd, UnitCmd, PageCmd, BorderCmd, VisualCmd, ImageCmd,
// TextFontCmd and EndVisualCmd.
type Command interface {
	Directive() Directive
	isCommand()
}

// LinkMultiCmd holds the raw LINKMULTI payload, a data source grouping key
type LinkMultiCmd struct {
	Key string `json:"key" yaml:"key" toml:"key"`
}

type LinkCmd struct {
	Link `yaml:",inline"`
}

type UnitCmd struct {
	Unit Unit `json:"unit" yaml:"unit" toml:"unit"`
}

type PageCmd struct {
	Page `yaml:",inline"`
}

type BorderCmd struct {
	Border `yaml:",inline"`
}

type VisualCmd struct {
	Visual `yaml:",inline"`
}

type ImageCmd struct {
	Image `yaml:",inline"`
}

type TextFontCmd struct {
	TextFont `yaml:",inline"`
}

// EndVisualCmd closes the block opened by the previous VisualCmd
type EndVisualCmd struct{}

func (LinkMultiCmd) Directive() Directive { return DirectiveLinkMulti }
func (LinkCmd) Directive() Directive      { return DirectiveLink }
func (UnitCmd) Directive() Directive      { return DirectiveUnit }
func (PageCmd) Directive() Directive      { return DirectivePage }
func (BorderCmd) Directive() Directive    { return DirectiveBorder }
func (VisualCmd) Directive() Directive    { return DirectiveVisual }
func (ImageCmd) Directive() Directive     { return DirectiveImage }
func (TextFontCmd) Directive() Directive  { return DirectiveTextFont }
func (EndVisualCmd) Directive() Directive { return DirectiveEndVisual }

func (LinkMultiCmd) isCommand() {}
func (LinkCmd) isCommand()      {}
func (UnitCmd) isCommand()      {}
func (PageCmd) isCommand()      {}
func (BorderCmd) isCommand()    {}
func (VisualCmd) isCommand()    {}
func (ImageCmd) isCommand()     {}
func (TextFontCmd) isCommand()  {}
func (EndVisualCmd) isCommand() {}

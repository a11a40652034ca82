package script

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arthur-debert/deckscript/pkg/errors"
)

// ParseUnit matches MM, SM or DM exactly
func ParseUnit(token string) (Unit, error) {
	token = strings.TrimSpace(token)
	switch token {
	case "MM":
		return UnitMM, nil
	case "SM":
		return UnitSM, nil
	case "DM":
		return UnitDM, nil
	}
	return 0, unknownEnumValue(DirectiveUnit, "unit", token)
}

// ParseOrientation matches PORTRAIT or ALBUM exactly
func ParseOrientation(token string) (Orientation, error) {
	token = strings.TrimSpace(token)
	switch token {
	case "PORTRAIT":
		return Portrait, nil
	case "ALBUM":
		return Album, nil
	}
	return 0, unknownEnumValue(DirectivePage, "orientation", token)
}

// ParseBorderType matches RECTANGLE or ROUNDED exactly
func ParseBorderType(token string) (BorderType, error) {
	token = strings.TrimSpace(token)
	switch token {
	case "RECTANGLE":
		return BorderRectangle, nil
	case "ROUNDED":
		return BorderRounded, nil
	}
	return 0, unknownEnumValue(DirectiveBorder, "type", token)
}

// ParseHorizontalAlign matches LEFT, CENTER or RIGHT exactly
func ParseHorizontalAlign(token string) (HorizontalAlign, error) {
	token = strings.TrimSpace(token)
	switch token {
	case "LEFT":
		return HAlignLeft, nil
	case "CENTER":
		return HAlignCenter, nil
	case "RIGHT":
		return HAlignRight, nil
	}
	return 0, unknownEnumValue(DirectiveTextFont, "horizontal_align", token)
}

// ParseVerticalAlign matches TOP, CENTER, BOTTOM and their WW variants exactly
func ParseVerticalAlign(token string) (VerticalAlign, error) {
	token = strings.TrimSpace(token)
	switch token {
	case "TOP":
		return VAlignTop, nil
	case "CENTER":
		return VAlignCenter, nil
	case "BOTTOM":
		return VAlignBottom, nil
	case "WWTOP":
		return VAlignWwTop, nil
	case "WWCENTER":
		return VAlignWwCenter, nil
	case "WWBOTTOM":
		return VAlignWwBottom, nil
	}
	return 0, unknownEnumValue(DirectiveTextFont, "vertical_align", token)
}

// ParseLink splits a LINK payload into file and sheet at '!'. One layer of
// surrounding double quotes is removed first. More than one '!' is rejected.
func ParseLink(token string) (Link, error) {
	s := strings.TrimSpace(token)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)

	parts := strings.Split(s, "!")
	switch len(parts) {
	case 1:
		return Link{File: parts[0]}, nil
	case 2:
		return Link{File: parts[0], Sheet: parts[1], HasSheet: true}, nil
	}
	return Link{}, errors.Newf(errors.ErrMalformedLine,
		"%s: %q has %d '!' separators, at most one is allowed", DirectiveLink, token, len(parts)-1).
		WithDetail(errors.DetailDirective, string(DirectiveLink)).
		WithDetail(errors.DetailText, token)
}

// parseBracketName strips one leading '[' and one trailing ']' when present
func parseBracketName(token string) string {
	s := strings.TrimSpace(token)
	s = strings.TrimPrefix(s, "[")
	return strings.TrimSuffix(s, "]")
}

// parseQuotedPath strips every '"' from both ends
func parseQuotedPath(token string) string {
	return strings.Trim(strings.TrimSpace(token), `"`)
}

// fold lowercases without validating the character set. A Caser is not safe
// for concurrent use, so one is built per call.
func fold(token string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(token))
}

func parseColor(token string) Color {
	return Color(fold(token))
}

func parseEffect(token string) Effect {
	return Effect(fold(token))
}

func parseInt32(token string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(token), 10, 32)
	return int32(v), err
}

func parseUint32(token string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(token), 10, 32)
	return uint32(v), err
}

func parseUint8(token string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(token), 10, 8)
	return uint8(v), err
}

package script

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/deckscript/pkg/errors"
)

// NumericKind tells whether a Numeric is in document units or relative to
// its container
type NumericKind int

const (
	KindAbsolute NumericKind = iota
	KindPercentage
)

func (k NumericKind) String() string {
	switch k {
	case KindAbsolute:
		return "absolute"
	case KindPercentage:
		return "percentage"
	default:
		return "unknown"
	}
}

// Numeric is a signed coordinate or size. Percentages are not bounded, so
// -5% and 145% are valid and place elements partly off the card.
type Numeric struct {
	Kind  NumericKind
	Value int32
}

// Absolute returns a Numeric in document units
func Absolute(v int32) Numeric {
	return Numeric{Kind: KindAbsolute, Value: v}
}

// Percentage returns a Numeric relative to the container
func Percentage(v int32) Numeric {
	return Numeric{Kind: KindPercentage, Value: v}
}

// IsPercentage reports whether n is relative to its container
func (n Numeric) IsPercentage() bool {
	return n.Kind == KindPercentage
}

// String formats n the way it is written in a script
func (n Numeric) String() string {
	s := strconv.FormatInt(int64(n.Value), 10)
	if n.Kind == KindPercentage {
		return s + "%"
	}
	return s
}

// MarshalText implements encoding.TextMarshaler
func (n Numeric) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (n *Numeric) UnmarshalText(text []byte) error {
	parsed, err := ParseNumeric(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// ParseNumeric parses "12" as Absolute(12) and "12%" as Percentage(12).
// Surrounding whitespace is ignored. Outside a directive there is no
// directive detail on the error, and the field detail is "numeric".
func ParseNumeric(token string) (Numeric, error) {
	n, err := parseNumeric(token)
	if err != nil {
		return Numeric{}, errors.Wrapf(err, errors.ErrMalformedNumber, "%q is not a number", token).
			WithDetail(errors.DetailField, "numeric").
			WithDetail(errors.DetailText, token)
	}
	return n, nil
}

func parseNumeric(token string) (Numeric, error) {
	token = strings.TrimSpace(token)
	kind := KindAbsolute
	digits := token
	if strings.HasSuffix(token, "%") {
		kind = KindPercentage
		digits = strings.TrimSuffix(token, "%")
	}

	v, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return Numeric{}, err
	}
	return Numeric{Kind: kind, Value: int32(v)}, nil
}

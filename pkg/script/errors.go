package script

import (
	"github.com/arthur-debert/deckscript/pkg/errors"
)

func unknownDirective(keyword string) *errors.ScriptError {
	return errors.Newf(errors.ErrUnknownDirective, "unknown directive %q", keyword).
		WithDetail(errors.DetailKeyword, keyword)
}

func unknownEnumValue(d Directive, field, value string) *errors.ScriptError {
	return errors.Newf(errors.ErrUnknownEnumValue, "%s: unknown %s %q", d, field, value).
		WithDetails(map[string]interface{}{
			errors.DetailDirective: string(d),
			errors.DetailField:     field,
			errors.DetailValue:     value,
		})
}

func malformedNumber(d Directive, field, text string, cause error) *errors.ScriptError {
	err := errors.Newf(errors.ErrMalformedNumber, "%s: %s %q is not a valid number", d, field, text)
	err.Wrapped = cause
	return err.WithDetails(map[string]interface{}{
		errors.DetailDirective: string(d),
		errors.DetailField:     field,
		errors.DetailText:      text,
	})
}

func missingField(d Directive, expected, actual int) *errors.ScriptError {
	return errors.Newf(errors.ErrMissingField, "%s expects %d fields, got %d", d, expected, actual).
		WithDetails(map[string]interface{}{
			errors.DetailDirective: string(d),
			errors.DetailExpected:  expected,
			errors.DetailActual:    actual,
		})
}

func malformedLine(text string) *errors.ScriptError {
	return errors.Newf(errors.ErrMalformedLine, "line %q has no '='", text).
		WithDetail(errors.DetailText, text)
}

func tooManyFields(d Directive, max, actual int) *errors.ScriptError {
	return errors.Newf(errors.ErrMalformedLine, "%s takes at most %d fields, got %d", d, max, actual).
		WithDetails(map[string]interface{}{
			errors.DetailDirective: string(d),
			errors.DetailExpected:  max,
			errors.DetailActual:    actual,
		})
}

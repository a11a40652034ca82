// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/deckscript/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unknown_directive",
			code:    errors.ErrUnknownDirective,
			message: `unknown directive "unit"`,
			wantStr: `[UNKNOWN_DIRECTIVE] unknown directive "unit"`,
		},
		{
			name:    "missing_field",
			code:    errors.ErrMissingField,
			message: "BORDER expects 3 fields, got 2",
			wantStr: "[MISSING_FIELD] BORDER expects 3 fields, got 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrMalformedNumber, "%s: %s is not a number", "PAGE", "abc")
	if err.Message != "PAGE: abc is not a number" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrSourceRead, "cannot read script")

		if err.Code != errors.ErrSourceRead {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrSourceRead)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[SOURCE_READ] cannot read script: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnknownEnumValue, "unknown unit").
		WithDetail(errors.DetailDirective, "UNIT").
		WithDetail(errors.DetailValue, "KM")

	if err.Details[errors.DetailDirective] != "UNIT" {
		t.Errorf("WithDetail() directive = %v, want UNIT", err.Details[errors.DetailDirective])
	}

	if err.Details[errors.DetailValue] != "KM" {
		t.Errorf("WithDetail() value = %v, want KM", err.Details[errors.DetailValue])
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		errors.DetailDirective: "TEXTFONT",
		errors.DetailExpected:  13,
		errors.DetailActual:    4,
	}

	err := errors.New(errors.ErrMissingField, "too few fields").WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrMalformedLine, "error 1")
	err2 := errors.New(errors.ErrMalformedLine, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with ScriptError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrUnknownDirective, "unknown"),
			code:     errors.ErrUnknownDirective,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrUnknownDirective, "unknown"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrSourceDecode, "bad bytes"),
			code:     errors.ErrSourceDecode,
			expected: true,
		},
		{
			name:     "non_script_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrUnknownDirective,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrUnknownDirective,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "script_error",
			err:      errors.New(errors.ErrMissingField, "missing"),
			expected: errors.ErrMissingField,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorDetails(t *testing.T) {
	err := errors.New(errors.ErrMalformedLine, "no '='").WithDetail(errors.DetailText, "PAGE 1")
	if got := errors.GetErrorDetails(err)[errors.DetailText]; got != "PAGE 1" {
		t.Errorf("GetErrorDetails() text = %v, want %q", got, "PAGE 1")
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for standard errors")
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	readErr := errors.Wrap(rootCause, errors.ErrSourceRead, "cannot read file")
	configErr := errors.Wrap(readErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var scriptErr *errors.ScriptError
		if stderrors.As(configErr.Unwrap(), &scriptErr) {
			if !errors.IsErrorCode(scriptErr, errors.ErrSourceRead) {
				t.Error("Middle error should have ErrSourceRead code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}

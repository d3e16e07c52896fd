package errors

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseHeader,
				Kind:   KindSyntax,
				Line:   4,
				Text:   "property flot x",
				Detail: "couldn't parse line",
			},
			contains: []string{"[header]", "syntax", "line 4", "property flot x", "couldn't parse line"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhasePayload,
				Kind:  KindSchema,
			},
			contains: []string{"[payload]", "schema"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhasePayload,
				Kind:   KindIO,
				Detail: "read failed",
				Cause:  io.ErrUnexpectedEOF,
			},
			contains: []string{"[payload]", "io", "read failed", "caused by", "unexpected EOF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_NoLineWhenUnknown(t *testing.T) {
	err := &Error{Phase: PhaseNormalize, Kind: KindConsistency, Detail: "bad"}
	if strings.Contains(err.Error(), "line") {
		t.Errorf("unexpected line marker in %q", err.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhasePayload,
		Kind:  KindValue,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseHeader,
		Kind:  KindMissingFormat,
		Line:  7,
	}

	if !err.Is(&Error{Phase: PhaseHeader, Kind: KindMissingFormat}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhasePayload, Kind: KindMissingFormat}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseHeader, Kind: KindSyntax}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseHeader, Kind: KindMissingFormat}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseHeader, KindContradictingFormat).
		Line(3).
		Text("format ascii 2.0").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "ascii 1.0", "ascii 2.0").
		Build()

	if err.Phase != PhaseHeader {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseHeader)
	}
	if err.Kind != KindContradictingFormat {
		t.Errorf("Kind = %v, want %v", err.Kind, KindContradictingFormat)
	}
	if err.Line != 3 {
		t.Errorf("Line = %d, want 3", err.Line)
	}
	if err.Text != "format ascii 2.0" {
		t.Errorf("Text = %q", err.Text)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected ascii 1.0, got ascii 2.0" {
		t.Errorf("Detail = %v", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("IO", func(t *testing.T) {
		err := IO(PhasePayload, 9, io.ErrUnexpectedEOF)
		if err.Kind != KindIO || err.Line != 9 {
			t.Errorf("Kind=%v Line=%d", err.Kind, err.Line)
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Error("IO should wrap its cause")
		}
	})

	t.Run("Syntax", func(t *testing.T) {
		err := Syntax(2, "formt ascii 1.0", errors.New("expected keyword"))
		if err.Kind != KindSyntax || err.Phase != PhaseHeader {
			t.Errorf("Kind=%v Phase=%v", err.Kind, err.Phase)
		}
		if err.Text != "formt ascii 1.0" {
			t.Errorf("Text = %q", err.Text)
		}
	})

	t.Run("Value", func(t *testing.T) {
		err := Value(5, "five", "int", nil)
		if err.Kind != KindValue {
			t.Errorf("Kind = %v, want %v", err.Kind, KindValue)
		}
		if !strings.Contains(err.Detail, "five") || !strings.Contains(err.Detail, "int") {
			t.Errorf("Detail = %q should name text and type", err.Detail)
		}
	})

	t.Run("ListUnderflow", func(t *testing.T) {
		err := ListUnderflow(1, 2, 3)
		if err.Kind != KindListUnderflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindListUnderflow)
		}
		if err.Value != 2 {
			t.Errorf("Value = %v, want 2", err.Value)
		}
	})

	t.Run("Schema", func(t *testing.T) {
		err := Schema("float index")
		if err.Kind != KindSchema || err.Phase != PhasePayload {
			t.Errorf("Kind=%v Phase=%v", err.Kind, err.Phase)
		}
	})

	t.Run("Materialize", func(t *testing.T) {
		cause := errors.New("unexpected key")
		err := Materialize(1, "w", cause)
		if err.Kind != KindMaterialize {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMaterialize)
		}
		if !errors.Is(err, cause) {
			t.Error("Materialize should wrap its cause")
		}
	})

	t.Run("Consistency", func(t *testing.T) {
		err := Consistency("no declaration for element %q", "edge")
		if err.Phase != PhaseNormalize || err.Kind != KindConsistency {
			t.Errorf("Kind=%v Phase=%v", err.Kind, err.Phase)
		}
		if !strings.Contains(err.Error(), `"edge"`) {
			t.Errorf("message %q should name the element", err.Error())
		}
	})
}

func TestIsAs(t *testing.T) {
	err := IO(PhaseHeader, 1, io.EOF)
	if !Is(err, io.EOF) {
		t.Error("Is should reach the cause")
	}
	var target *Error
	if !As(err, &target) || target.Kind != KindIO {
		t.Errorf("As: got %v", target)
	}
}

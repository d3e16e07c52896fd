package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseHeader    Phase = "header"    // header lines up to end_header
	PhasePayload   Phase = "payload"   // element records
	PhaseNormalize Phase = "normalize" // consistency pass
)

// Kind categorizes the error
type Kind string

const (
	KindIO                  Kind = "io"
	KindSyntax              Kind = "syntax"
	KindUnexpectedLine      Kind = "unexpected_line"
	KindContradictingFormat Kind = "contradicting_format"
	KindMissingFormat       Kind = "missing_format"
	KindOrphanProperty      Kind = "orphan_property"
	KindValue               Kind = "value"
	KindListUnderflow       Kind = "list_underflow"
	KindSchema              Kind = "schema"
	KindTrailingData        Kind = "trailing_data"
	KindMaterialize         Kind = "materialize"
	KindConsistency         Kind = "consistency"
)

// Error is the structured error type returned by the decoder and normalizer
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Text   string // offending line or token
	Detail string
	Line   int // 1-based line or record index, 0 if unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Line > 0 {
		b.WriteString(" at line ")
		b.WriteString(strconv.Itoa(e.Line))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Text != "" {
		b.WriteString(" (text: ")
		b.WriteString(strconv.Quote(e.Text))
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Is reports whether any error in err's chain matches target. It is the
// standard library errors.Is, re-exported so callers need a single import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Line sets the line number
func (b *Builder) Line(n int) *Builder {
	b.err.Line = n
	return b
}

// Text sets the offending raw text
func (b *Builder) Text(s string) *Builder {
	b.err.Text = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// IO wraps a failed or premature read.
func IO(phase Phase, line int, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Line:   line,
		Detail: "read failed",
		Cause:  cause,
	}
}

// Syntax creates a grammar failure for a header line
func Syntax(line int, text string, cause error) *Error {
	return &Error{
		Phase:  PhaseHeader,
		Kind:   KindSyntax,
		Line:   line,
		Text:   text,
		Detail: "couldn't parse line",
		Cause:  cause,
	}
}

// Value creates a value failure for a token that does not parse as its declared type
func Value(line int, text, typeName string, cause error) *Error {
	return &Error{
		Phase:  PhasePayload,
		Kind:   KindValue,
		Line:   line,
		Text:   text,
		Value:  typeName,
		Detail: fmt.Sprintf("cannot parse %q as %s", text, typeName),
		Cause:  cause,
	}
}

// ListUnderflow creates an error for a list that ran out of fields before its declared length
func ListUnderflow(line int, index, length int) *Error {
	return &Error{
		Phase:  PhasePayload,
		Kind:   KindListUnderflow,
		Line:   line,
		Value:  index,
		Detail: fmt.Sprintf("couldn't find a list element at index %d (declared length %d)", index, length),
	}
}

// Schema creates an error for a schema the binary decoder cannot read
func Schema(detail string) *Error {
	return &Error{
		Phase:  PhasePayload,
		Kind:   KindSchema,
		Detail: detail,
	}
}

// Materialize wraps an error returned by an element while storing a property
func Materialize(line int, property string, cause error) *Error {
	return &Error{
		Phase:  PhasePayload,
		Kind:   KindMaterialize,
		Line:   line,
		Value:  property,
		Detail: fmt.Sprintf("set property %q", property),
		Cause:  cause,
	}
}

// Consistency creates a normalizer failure
func Consistency(format string, args ...any) *Error {
	return &Error{
		Phase:  PhaseNormalize,
		Kind:   KindConsistency,
		Detail: fmt.Sprintf(format, args...),
	}
}

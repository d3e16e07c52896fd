// Package errors provides structured error types for the plykit library.
//
// Errors are categorized by Phase (header, payload or normalize) and Kind
// (error category). The Error type carries the line number, the offending
// text and the cause chain, so a failure can be diagnosed from the value
// alone.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseHeader, errors.KindContradictingFormat).
//		Line(3).
//		Text("format binary_little_endian 1.0").
//		Detail("previous definition: ascii 1.0").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Value(12, "five", "int", cause)
//	err := errors.Consistency("no declaration for element %q", name)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind only:
//
//	if errors.Is(err, &errors.Error{Phase: errors.PhaseHeader, Kind: errors.KindMissingFormat}) {
//		...
//	}
package errors

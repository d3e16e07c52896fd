// Package grammar implements the line grammar of the PLY header and the
// tokenizer for ascii payload lines.
//
// ParseLine turns one raw header line into a Line:
//
//	l, err := grammar.ParseLine("property list uchar int vertex_index\n")
//	// l == grammar.Property{Def: ply.PropertyDef{Name: "vertex_index", ...}}
//
// Tokens are separated by runs of spaces and tabs. Keywords and type names
// are case-sensitive. Failures are *SyntaxError values carrying the 1-based
// column and the expected alternatives.
//
// ParseDataLine splits a payload line into numeric literal fields. A literal
// is an optional sign, digits with an optional fraction, and an optional
// exponent; "++3", "+-3" and "five" are rejected. Fields stay untyped; the
// decoder converts them according to the declared property types.
package grammar

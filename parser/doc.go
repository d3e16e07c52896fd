// Package parser decodes PLY polygon files.
//
// # Quick Start
//
//	p := parser.NewDefault()
//	f, err := os.Open("model.ply")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	model, err := p.ReadPly(ctx, f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vertices, _ := model.Payload.Get("vertex")
//
// # Typed Records
//
// Any type implementing ply.Element can receive records. The parser calls
// the constructor once per record and SetProperty once per declared property:
//
//	type Vertex struct{ X, Y, Z float32 }
//
//	func (v *Vertex) SetProperty(name string, p ply.Property) error { ... }
//
//	p := parser.New(func() *Vertex { return new(Vertex) })
//
// # Staged Decoding
//
// ReadHeader, ReadPayload and ReadPayloadForElement decode one stage at a
// time from a Source. ReadAsciiElement, ReadBigEndianElement and
// ReadLittleEndianElement decode a single record.
//
// # Options
//
//	WithLogger(l)          - per-parser zap logger
//	WithStrictFields()     - reject unused fields on ascii record lines
//	WithMaxListLength(n)   - reject list counts above n
//	WithConfig(c)          - apply a Config loaded elsewhere
//
// All failures are *errors.Error values from the plykit errors package.
package parser

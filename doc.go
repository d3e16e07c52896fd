// Package plykit decodes PLY polygon files in ascii and both binary encodings.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	plykit/              Root package with one-call Decode helpers
//	├── ply/             Value types, schema, payload and the consistency normalizer
//	├── grammar/         Header line and ascii data line grammar
//	├── parser/          Header assembler and ascii/binary payload decoders
//	├── errors/          Structured error types for debugging
//	└── cmd/plyinfo/     Command line inspector
//
// # Quick Start
//
//	f, err := os.Open("model.ply")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	model, err := plykit.Decode(ctx, f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, name := range model.Payload.Names() {
//	    records, _ := model.Payload.Get(name)
//	    fmt.Println(name, len(records))
//	}
//
// # Value Types
//
// Every decoded value is a ply.Property:
//
//   - Scalars: Char, UChar, Short, UShort, Int, UInt, Float, Double
//   - Lists: ListChar ... ListDouble, one per scalar type
//
// # Typed Records
//
// Decode produces ply.DefaultElement maps. For typed records build a
// parser.Parser with a constructor for a type implementing ply.Element.
//
// # Thread Safety
//
// A parser.Parser is safe for concurrent use on independent sources. A
// ply.Ply value is not synchronized.
package plykit

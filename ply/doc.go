// Package ply defines the data model of a decoded PLY file.
//
// A Ply holds a Header, which declares the encoding, version, comments,
// obj_info lines and the element schema, and a Payload, which maps each
// element name to its records in file order.
//
// # Types
//
// Declared types are described by ScalarType (TypeChar ... TypeDouble) and
// PropertyType, which is either a scalar or a list with an integer index
// type. Decoded values implement Property; the concrete type is one of
// sixteen variants:
//
//	Char, UChar, Short, UShort, Int, UInt, Float, Double
//	ListChar, ListUChar, ListShort, ListUShort, ListInt, ListUInt, ListFloat, ListDouble
//
// Consume them with a type switch:
//
//	switch v := p.(type) {
//	case ply.Float:
//		x = float32(v)
//	case ply.ListInt:
//		indices = []int32(v)
//	}
//
// # Records
//
// Records are built through the Element interface. DefaultElement is a
// name to Property map; callers can decode straight into their own structs
// by implementing SetProperty.
//
// # Consistency
//
// Decoding never validates names or counts. Call Ply.Normalize before
// writing a Ply back out.
package ply

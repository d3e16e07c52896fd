package ply

import (
	"fmt"
	"strconv"
)

// Version is the format version declared on the format line.
type Version struct {
	Major uint32
	Minor uint32
}

func (v Version) String() string {
	return strconv.FormatUint(uint64(v.Major), 10) + "." + strconv.FormatUint(uint64(v.Minor), 10)
}

// Encoding selects the payload representation.
type Encoding uint8

const (
	Ascii Encoding = iota
	BinaryBigEndian
	BinaryLittleEndian
)

// String returns the header keyword for the encoding.
func (e Encoding) String() string {
	switch e {
	case Ascii:
		return "ascii"
	case BinaryBigEndian:
		return "binary_big_endian"
	case BinaryLittleEndian:
		return "binary_little_endian"
	}
	return fmt.Sprintf("encoding(%d)", uint8(e))
}

// ParseEncoding maps a header keyword to an Encoding.
func ParseEncoding(s string) (Encoding, bool) {
	switch s {
	case "ascii":
		return Ascii, true
	case "binary_big_endian":
		return BinaryBigEndian, true
	case "binary_little_endian":
		return BinaryLittleEndian, true
	}
	return 0, false
}

// ScalarType is one of the fixed-width value types a property can hold.
type ScalarType uint8

const (
	TypeChar   ScalarType = iota // int8
	TypeUChar                    // uint8
	TypeShort                    // int16
	TypeUShort                   // uint16
	TypeInt                      // int32
	TypeUInt                     // uint32
	TypeFloat                    // float32
	TypeDouble                   // float64
)

var scalarNames = [...]string{
	TypeChar:   "char",
	TypeUChar:  "uchar",
	TypeShort:  "short",
	TypeUShort: "ushort",
	TypeInt:    "int",
	TypeUInt:   "uint",
	TypeFloat:  "float",
	TypeDouble: "double",
}

// String returns the header keyword for the scalar type.
func (t ScalarType) String() string {
	if int(t) < len(scalarNames) {
		return scalarNames[t]
	}
	return fmt.Sprintf("scalar(%d)", uint8(t))
}

// ParseScalarType maps a header keyword to a ScalarType. Matching is case-sensitive.
func ParseScalarType(s string) (ScalarType, bool) {
	for i, name := range scalarNames {
		if name == s {
			return ScalarType(i), true
		}
	}
	return 0, false
}

// Size returns the encoded width in bytes.
func (t ScalarType) Size() int {
	switch t {
	case TypeChar, TypeUChar:
		return 1
	case TypeShort, TypeUShort:
		return 2
	case TypeInt, TypeUInt, TypeFloat:
		return 4
	case TypeDouble:
		return 8
	}
	return 0
}

// IsInteger reports whether t may be used as a list index type.
func (t ScalarType) IsInteger() bool {
	return t <= TypeUInt
}

// TypeKind distinguishes scalar from list properties
type TypeKind uint8

const (
	KindScalar TypeKind = iota
	KindList
)

// PropertyType describes the declared type of a property.
// For scalars only Scalar is meaningful; for lists Index is the count prefix
// type and Scalar the element type.
type PropertyType struct {
	Kind   TypeKind
	Index  ScalarType
	Scalar ScalarType
}

// ScalarProperty returns the type of a scalar property.
func ScalarProperty(t ScalarType) PropertyType {
	return PropertyType{Kind: KindScalar, Scalar: t}
}

// ListProperty returns the type of a list property.
func ListProperty(index, elem ScalarType) PropertyType {
	return PropertyType{Kind: KindList, Index: index, Scalar: elem}
}

// IsList reports whether the type is a list.
func (p PropertyType) IsList() bool {
	return p.Kind == KindList
}

func (p PropertyType) String() string {
	if p.Kind == KindList {
		return "list " + p.Index.String() + " " + p.Scalar.String()
	}
	return p.Scalar.String()
}

// PropertyDef is one property declaration of an element.
type PropertyDef struct {
	Name string
	Type PropertyType
}

// NewPropertyDef creates a property definition.
func NewPropertyDef(name string, t PropertyType) PropertyDef {
	return PropertyDef{Name: name, Type: t}
}

// ElementDef is one element declaration with its properties in declaration order.
type ElementDef struct {
	Name       string
	Properties []PropertyDef
	Count      int
}

// NewElementDef creates an element definition with no records and no properties.
func NewElementDef(name string) ElementDef {
	return ElementDef{Name: name}
}

// Property returns the property with the given name.
func (e *ElementDef) Property(name string) (PropertyDef, bool) {
	for _, p := range e.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return PropertyDef{}, false
}

// AddProperty appends p unless a property of the same name exists.
// It reports whether p was added.
func (e *ElementDef) AddProperty(p PropertyDef) bool {
	if _, ok := e.Property(p.Name); ok {
		return false
	}
	e.Properties = append(e.Properties, p)
	return true
}

// Header holds everything declared before end_header.
type Header struct {
	ObjInfos []string
	Comments []string
	Elements []ElementDef
	Version  Version
	Encoding Encoding
}

// NewHeader returns an ascii 1.0 header with no elements.
func NewHeader() Header {
	return Header{Encoding: Ascii, Version: Version{Major: 1, Minor: 0}}
}

// Element returns a pointer to the element definition with the given name, or nil.
func (h *Header) Element(name string) *ElementDef {
	for i := range h.Elements {
		if h.Elements[i].Name == name {
			return &h.Elements[i]
		}
	}
	return nil
}

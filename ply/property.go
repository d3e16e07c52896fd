package ply

// Property is a decoded property value. The concrete type is one of the
// eight scalar types Char ... Double or the eight list types ListChar ...
// ListDouble, and always matches the PropertyType that produced it.
type Property interface {
	// ScalarType returns the scalar type of the value, or of the list elements.
	ScalarType() ScalarType
	// IsList reports whether the value is a list variant.
	IsList() bool

	property()
}

// Scalar variants.
type (
	Char   int8
	UChar  uint8
	Short  int16
	UShort uint16
	Int    int32
	UInt   uint32
	Float  float32
	Double float64
)

// List variants.
type (
	ListChar   []int8
	ListUChar  []uint8
	ListShort  []int16
	ListUShort []uint16
	ListInt    []int32
	ListUInt   []uint32
	ListFloat  []float32
	ListDouble []float64
)

func (Char) ScalarType() ScalarType   { return TypeChar }
func (UChar) ScalarType() ScalarType  { return TypeUChar }
func (Short) ScalarType() ScalarType  { return TypeShort }
func (UShort) ScalarType() ScalarType { return TypeUShort }
func (Int) ScalarType() ScalarType    { return TypeInt }
func (UInt) ScalarType() ScalarType   { return TypeUInt }
func (Float) ScalarType() ScalarType  { return TypeFloat }
func (Double) ScalarType() ScalarType { return TypeDouble }

func (ListChar) ScalarType() ScalarType   { return TypeChar }
func (ListUChar) ScalarType() ScalarType  { return TypeUChar }
func (ListShort) ScalarType() ScalarType  { return TypeShort }
func (ListUShort) ScalarType() ScalarType { return TypeUShort }
func (ListInt) ScalarType() ScalarType    { return TypeInt }
func (ListUInt) ScalarType() ScalarType   { return TypeUInt }
func (ListFloat) ScalarType() ScalarType  { return TypeFloat }
func (ListDouble) ScalarType() ScalarType { return TypeDouble }

func (Char) IsList() bool   { return false }
func (UChar) IsList() bool  { return false }
func (Short) IsList() bool  { return false }
func (UShort) IsList() bool { return false }
func (Int) IsList() bool    { return false }
func (UInt) IsList() bool   { return false }
func (Float) IsList() bool  { return false }
func (Double) IsList() bool { return false }

func (ListChar) IsList() bool   { return true }
func (ListUChar) IsList() bool  { return true }
func (ListShort) IsList() bool  { return true }
func (ListUShort) IsList() bool { return true }
func (ListInt) IsList() bool    { return true }
func (ListUInt) IsList() bool   { return true }
func (ListFloat) IsList() bool  { return true }
func (ListDouble) IsList() bool { return true }

func (Char) property()   {}
func (UChar) property()  {}
func (Short) property()  {}
func (UShort) property() {}
func (Int) property()    {}
func (UInt) property()   {}
func (Float) property()  {}
func (Double) property() {}

func (ListChar) property()   {}
func (ListUChar) property()  {}
func (ListShort) property()  {}
func (ListUShort) property() {}
func (ListInt) property()    {}
func (ListUInt) property()   {}
func (ListFloat) property()  {}
func (ListDouble) property() {}

// ListLen returns the number of elements of a list property, or -1 for a scalar.
func ListLen(p Property) int {
	switch v := p.(type) {
	case ListChar:
		return len(v)
	case ListUChar:
		return len(v)
	case ListShort:
		return len(v)
	case ListUShort:
		return len(v)
	case ListInt:
		return len(v)
	case ListUInt:
		return len(v)
	case ListFloat:
		return len(v)
	case ListDouble:
		return len(v)
	}
	return -1
}

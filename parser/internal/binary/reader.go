package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/wippyai/plykit/ply"
)

// Errors returned by ReadScalar, ReadCount and ReadList.
var (
	ErrNonIntegerIndex = errors.New("index of list must be an integer type")
	ErrNegativeCount   = errors.New("negative list count")
	ErrUnknownType     = errors.New("unknown scalar type")
)

// Reader wraps an io.Reader with position tracking and a fixed byte order.
type Reader struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
	pos   int
}

// NewReader creates a new Reader reading values in the given byte order.
func NewReader(r io.Reader, order binary.ByteOrder) *Reader {
	return &Reader{r: r, order: order}
}

// Position returns the number of bytes consumed.
func (r *Reader) Position() int {
	return r.pos
}

// Order returns the byte order of multi-byte values.
func (r *Reader) Order() binary.ByteOrder {
	return r.order
}

// ReadBytes reads exactly n bytes. A short read returns io.ErrUnexpectedEOF,
// also when the stream ends before the first byte.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := r.readFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (r *Reader) readFull(buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	r.pos += n
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return r.wrapError(err)
	}
	return nil
}

func (r *Reader) fixed(n int) ([]byte, error) {
	b := r.buf[:n]
	if err := r.readFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadInt8 reads a char.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.fixed(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// ReadUint8 reads a uchar.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.fixed(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt16 reads a short.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint16 reads a ushort.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.fixed(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

// ReadInt32 reads an int.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint32 reads a uint.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.fixed(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// ReadFloat32 reads a float.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads a double.
func (r *Reader) ReadFloat64() (float64, error) {
	b, err := r.fixed(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(r.order.Uint64(b)), nil
}

// ReadScalar reads one value of type t.
func (r *Reader) ReadScalar(t ply.ScalarType) (ply.Property, error) {
	switch t {
	case ply.TypeChar:
		v, err := r.ReadInt8()
		return ply.Char(v), err
	case ply.TypeUChar:
		v, err := r.ReadUint8()
		return ply.UChar(v), err
	case ply.TypeShort:
		v, err := r.ReadInt16()
		return ply.Short(v), err
	case ply.TypeUShort:
		v, err := r.ReadUint16()
		return ply.UShort(v), err
	case ply.TypeInt:
		v, err := r.ReadInt32()
		return ply.Int(v), err
	case ply.TypeUInt:
		v, err := r.ReadUint32()
		return ply.UInt(v), err
	case ply.TypeFloat:
		v, err := r.ReadFloat32()
		return ply.Float(v), err
	case ply.TypeDouble:
		v, err := r.ReadFloat64()
		return ply.Double(v), err
	}
	return nil, fmt.Errorf("%w %d", ErrUnknownType, t)
}

// ReadCount reads a list count of index type t. Float and double index
// types fail with ErrNonIntegerIndex before any byte is consumed. Signed
// counts are widened as two's complement; a negative count is an error.
func (r *Reader) ReadCount(t ply.ScalarType) (int, error) {
	var n int64
	switch t {
	case ply.TypeChar:
		v, err := r.ReadInt8()
		if err != nil {
			return 0, err
		}
		n = int64(v)
	case ply.TypeUChar:
		v, err := r.ReadUint8()
		if err != nil {
			return 0, err
		}
		n = int64(v)
	case ply.TypeShort:
		v, err := r.ReadInt16()
		if err != nil {
			return 0, err
		}
		n = int64(v)
	case ply.TypeUShort:
		v, err := r.ReadUint16()
		if err != nil {
			return 0, err
		}
		n = int64(v)
	case ply.TypeInt:
		v, err := r.ReadInt32()
		if err != nil {
			return 0, err
		}
		n = int64(v)
	case ply.TypeUInt:
		v, err := r.ReadUint32()
		if err != nil {
			return 0, err
		}
		n = int64(v)
	case ply.TypeFloat, ply.TypeDouble:
		return 0, fmt.Errorf("%w, %s declared", ErrNonIntegerIndex, t)
	default:
		return 0, fmt.Errorf("%w %d", ErrUnknownType, t)
	}
	if n < 0 {
		return 0, r.wrapError(fmt.Errorf("%w %d", ErrNegativeCount, n))
	}
	return int(n), nil
}

func (r *Reader) wrapError(err error) error {
	return fmt.Errorf("at byte %d: %w", r.pos, err)
}

// maxPrealloc bounds the capacity reserved up front for a list, so a corrupt
// count cannot allocate more than the stream actually delivers.
const maxPrealloc = 1 << 12

func capFor(n int) int {
	return min(n, maxPrealloc)
}

// ReadList reads n values of element type t into the matching list variant.
func (r *Reader) ReadList(t ply.ScalarType, n int) (ply.Property, error) {
	switch t {
	case ply.TypeChar:
		return readList(n, r.ReadInt8, func(v []int8) ply.Property { return ply.ListChar(v) })
	case ply.TypeUChar:
		return readList(n, r.ReadUint8, func(v []uint8) ply.Property { return ply.ListUChar(v) })
	case ply.TypeShort:
		return readList(n, r.ReadInt16, func(v []int16) ply.Property { return ply.ListShort(v) })
	case ply.TypeUShort:
		return readList(n, r.ReadUint16, func(v []uint16) ply.Property { return ply.ListUShort(v) })
	case ply.TypeInt:
		return readList(n, r.ReadInt32, func(v []int32) ply.Property { return ply.ListInt(v) })
	case ply.TypeUInt:
		return readList(n, r.ReadUint32, func(v []uint32) ply.Property { return ply.ListUInt(v) })
	case ply.TypeFloat:
		return readList(n, r.ReadFloat32, func(v []float32) ply.Property { return ply.ListFloat(v) })
	case ply.TypeDouble:
		return readList(n, r.ReadFloat64, func(v []float64) ply.Property { return ply.ListDouble(v) })
	}
	return nil, fmt.Errorf("%w %d", ErrUnknownType, t)
}

func readList[T any](n int, read func() (T, error), wrap func([]T) ply.Property) (ply.Property, error) {
	list := make([]T, 0, capFor(n))
	for i := 0; i < n; i++ {
		v, err := read()
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return wrap(list), nil
}

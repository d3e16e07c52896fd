package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"reflect"
	"testing"

	"github.com/wippyai/plykit/ply"
)

func TestReaderByteOrder(t *testing.T) {
	tests := []struct {
		name  string
		order binary.ByteOrder
		data  []byte
	}{
		{"big", binary.BigEndian, []byte{0x01, 0x02, 0x00, 0x00, 0x00, 0x03}},
		{"little", binary.LittleEndian, []byte{0x02, 0x01, 0x03, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tt.data), tt.order)
			s, err := r.ReadUint16()
			if err != nil {
				t.Fatalf("ReadUint16: %v", err)
			}
			if s != 0x0102 {
				t.Errorf("ReadUint16: got 0x%04x, want 0x0102", s)
			}
			i, err := r.ReadInt32()
			if err != nil {
				t.Fatalf("ReadInt32: %v", err)
			}
			if i != 3 {
				t.Errorf("ReadInt32: got %d, want 3", i)
			}
			if r.Position() != 6 {
				t.Errorf("position: got %d, want 6", r.Position())
			}
		})
	}
}

func TestReaderSingleByteTypes(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xff, 0xff}), binary.BigEndian)
	c, err := r.ReadInt8()
	if err != nil || c != -1 {
		t.Errorf("ReadInt8 = %d, %v; want -1", c, err)
	}
	u, err := r.ReadUint8()
	if err != nil || u != 255 {
		t.Errorf("ReadUint8 = %d, %v; want 255", u, err)
	}
}

func TestReaderFloats(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, float32(1.5))
	binary.Write(&buf, binary.LittleEndian, float64(-2.25))

	r := NewReader(&buf, binary.LittleEndian)
	f, err := r.ReadFloat32()
	if err != nil || f != 1.5 {
		t.Errorf("ReadFloat32 = %v, %v; want 1.5", f, err)
	}
	d, err := r.ReadFloat64()
	if err != nil || d != -2.25 {
		t.Errorf("ReadFloat64 = %v, %v; want -2.25", d, err)
	}
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01}), binary.BigEndian)
	_, err := r.ReadUint32()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	if r.Position() != 1 {
		t.Errorf("position: got %d, want 1", r.Position())
	}

	r = NewReader(bytes.NewReader(nil), binary.BigEndian)
	if _, err := r.ReadUint8(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("empty stream: expected io.ErrUnexpectedEOF, got %v", err)
	}

	r = NewReader(bytes.NewReader([]byte{1, 2}), binary.BigEndian)
	if _, err := r.ReadBytes(3); err == nil {
		t.Error("expected error for reading past EOF")
	}
}

func TestReaderReadScalar(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, int8(-3))
	binary.Write(&buf, binary.BigEndian, uint8(3))
	binary.Write(&buf, binary.BigEndian, int16(-300))
	binary.Write(&buf, binary.BigEndian, uint16(300))
	binary.Write(&buf, binary.BigEndian, int32(-70000))
	binary.Write(&buf, binary.BigEndian, uint32(70000))
	binary.Write(&buf, binary.BigEndian, float32(0.5))
	binary.Write(&buf, binary.BigEndian, math.Pi)

	want := []ply.Property{
		ply.Char(-3), ply.UChar(3), ply.Short(-300), ply.UShort(300),
		ply.Int(-70000), ply.UInt(70000), ply.Float(0.5), ply.Double(math.Pi),
	}
	types := []ply.ScalarType{
		ply.TypeChar, ply.TypeUChar, ply.TypeShort, ply.TypeUShort,
		ply.TypeInt, ply.TypeUInt, ply.TypeFloat, ply.TypeDouble,
	}

	r := NewReader(&buf, binary.BigEndian)
	for i, typ := range types {
		got, err := r.ReadScalar(typ)
		if err != nil {
			t.Fatalf("ReadScalar(%v): %v", typ, err)
		}
		if got != want[i] {
			t.Errorf("ReadScalar(%v) = %#v, want %#v", typ, got, want[i])
		}
	}
	if r.Position() != 1+1+2+2+4+4+4+8 {
		t.Errorf("position: got %d", r.Position())
	}
}

func TestReaderReadCount(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x05, 0x03}), binary.BigEndian)
	n, err := r.ReadCount(ply.TypeUShort)
	if err != nil || n != 5 {
		t.Errorf("ReadCount(ushort) = %d, %v; want 5", n, err)
	}
	n, err = r.ReadCount(ply.TypeUChar)
	if err != nil || n != 3 {
		t.Errorf("ReadCount(uchar) = %d, %v; want 3", n, err)
	}
}

func TestReaderReadCountNonInteger(t *testing.T) {
	for _, typ := range []ply.ScalarType{ply.TypeFloat, ply.TypeDouble} {
		r := NewReader(bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 0}), binary.LittleEndian)
		_, err := r.ReadCount(typ)
		if !errors.Is(err, ErrNonIntegerIndex) {
			t.Errorf("ReadCount(%v): expected ErrNonIntegerIndex, got %v", typ, err)
		}
		if r.Position() != 0 {
			t.Errorf("ReadCount(%v) consumed %d bytes", typ, r.Position())
		}
	}
}

func TestReaderReadCountNegative(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xff}), binary.LittleEndian)
	if _, err := r.ReadCount(ply.TypeChar); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("expected ErrNegativeCount, got %v", err)
	}
}

func TestReaderReadList(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, []int32{1, -2, 3})

	r := NewReader(&buf, binary.LittleEndian)
	got, err := r.ReadList(ply.TypeInt, 3)
	if err != nil {
		t.Fatalf("ReadList: %v", err)
	}
	if !reflect.DeepEqual(got, ply.ListInt{1, -2, 3}) {
		t.Errorf("ReadList = %#v", got)
	}

	empty, err := r.ReadList(ply.TypeFloat, 0)
	if err != nil {
		t.Fatalf("ReadList(0): %v", err)
	}
	if !reflect.DeepEqual(empty, ply.ListFloat{}) {
		t.Errorf("ReadList(0) = %#v, want empty ListFloat", empty)
	}

	if _, err := r.ReadList(ply.TypeUChar, 1<<20); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("huge count on empty stream: expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestReaderUnknownType(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2, 3, 4}), binary.LittleEndian)
	unknown := ply.ScalarType(42)

	if _, err := r.ReadScalar(unknown); !errors.Is(err, ErrUnknownType) {
		t.Errorf("ReadScalar: expected ErrUnknownType, got %v", err)
	}
	if _, err := r.ReadCount(unknown); !errors.Is(err, ErrUnknownType) {
		t.Errorf("ReadCount: expected ErrUnknownType, got %v", err)
	}
	if _, err := r.ReadList(unknown, 1); !errors.Is(err, ErrUnknownType) {
		t.Errorf("ReadList: expected ErrUnknownType, got %v", err)
	}
	if r.Position() != 0 {
		t.Errorf("Position() = %d, want 0", r.Position())
	}
}

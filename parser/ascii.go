package parser

import (
	"context"
	"io"
	"strconv"

	"github.com/wippyai/plykit/errors"
	"github.com/wippyai/plykit/grammar"
	"github.com/wippyai/plykit/ply"
)

// ReadAsciiElement decodes one ascii record line according to def.
func (p *Parser[E]) ReadAsciiElement(line string, def *ply.ElementDef) (E, error) {
	return p.readAsciiElement(line, def, 0)
}

func (p *Parser[E]) readAsciiPayloadForElement(ctx context.Context, src Source, loc *location, def *ply.ElementDef) ([]E, error) {
	records := make([]E, 0, capFor(def.Count))
	for i := 0; i < def.Count; i++ {
		if err := checkContext(ctx, errors.PhasePayload, loc.line); err != nil {
			return nil, err
		}
		loc.next()
		line, err := readLine(src)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, errors.IO(errors.PhasePayload, loc.line, err)
		}
		e, err := p.readAsciiElement(line, def, loc.line)
		if err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	return records, nil
}

func (p *Parser[E]) readAsciiElement(line string, def *ply.ElementDef, lineNo int) (E, error) {
	var zero E

	fields, err := grammar.ParseDataLine(line)
	if err != nil {
		return zero, errors.New(errors.PhasePayload, errors.KindValue).
			Line(lineNo).
			Text(cleanLine(line)).
			Detail("couldn't parse data line of element %q", def.Name).
			Cause(err).
			Build()
	}

	rec := asciiRecord{fields: fields, line: lineNo, maxList: p.opts.MaxListLength}
	e := p.newElement()
	for _, prop := range def.Properties {
		v, err := rec.property(prop)
		if err != nil {
			return zero, err
		}
		if err := e.SetProperty(prop.Name, v); err != nil {
			return zero, errors.Materialize(lineNo, prop.Name, err)
		}
	}

	if p.opts.StrictFields && rec.pos < len(fields) {
		return zero, errors.New(errors.PhasePayload, errors.KindTrailingData).
			Line(lineNo).
			Text(cleanLine(line)).
			Value(len(fields) - rec.pos).
			Detail("%d unused field(s) after last property of element %q", len(fields)-rec.pos, def.Name).
			Build()
	}
	return e, nil
}

// asciiRecord consumes the fields of one record left to right.
type asciiRecord struct {
	fields  []string
	pos     int
	line    int
	maxList int
}

func (r *asciiRecord) next() (string, bool) {
	if r.pos >= len(r.fields) {
		return "", false
	}
	s := r.fields[r.pos]
	r.pos++
	return s, true
}

func (r *asciiRecord) property(def ply.PropertyDef) (ply.Property, error) {
	if !def.Type.IsList() {
		s, ok := r.next()
		if !ok {
			return nil, errors.New(errors.PhasePayload, errors.KindValue).
				Line(r.line).
				Value(def.Name).
				Detail("missing field for property %q", def.Name).
				Build()
		}
		return r.scalar(s, def.Type.Scalar)
	}

	s, ok := r.next()
	if !ok {
		return nil, errors.New(errors.PhasePayload, errors.KindValue).
			Line(r.line).
			Value(def.Name).
			Detail("missing list count for property %q", def.Name).
			Build()
	}
	// One bit less than IntSize keeps every accepted count representable as int.
	n, err := parseUnsigned[uint64](s, strconv.IntSize-1)
	if err != nil {
		return nil, errors.Value(r.line, s, "list count", err)
	}
	if r.maxList > 0 && n > uint64(r.maxList) {
		return nil, errors.New(errors.PhasePayload, errors.KindValue).
			Line(r.line).
			Text(s).
			Value(def.Name).
			Detail("list %q of length %d exceeds limit %d", def.Name, n, r.maxList).
			Build()
	}
	return r.list(def.Type.Scalar, int(n))
}

func (r *asciiRecord) scalar(s string, t ply.ScalarType) (ply.Property, error) {
	var (
		v   ply.Property
		err error
	)
	switch t {
	case ply.TypeChar:
		var n int8
		n, err = parseSigned[int8](s, 8)
		v = ply.Char(n)
	case ply.TypeUChar:
		var n uint8
		n, err = parseUnsigned[uint8](s, 8)
		v = ply.UChar(n)
	case ply.TypeShort:
		var n int16
		n, err = parseSigned[int16](s, 16)
		v = ply.Short(n)
	case ply.TypeUShort:
		var n uint16
		n, err = parseUnsigned[uint16](s, 16)
		v = ply.UShort(n)
	case ply.TypeInt:
		var n int32
		n, err = parseSigned[int32](s, 32)
		v = ply.Int(n)
	case ply.TypeUInt:
		var n uint32
		n, err = parseUnsigned[uint32](s, 32)
		v = ply.UInt(n)
	case ply.TypeFloat:
		var f float32
		f, err = parseFloat[float32](s, 32)
		v = ply.Float(f)
	case ply.TypeDouble:
		var f float64
		f, err = parseFloat[float64](s, 64)
		v = ply.Double(f)
	default:
		return nil, errors.Schema("unknown scalar type " + t.String())
	}
	if err != nil {
		return nil, errors.Value(r.line, s, t.String(), err)
	}
	return v, nil
}

func (r *asciiRecord) list(t ply.ScalarType, n int) (ply.Property, error) {
	switch t {
	case ply.TypeChar:
		return asciiList(r, n, t, func(s string) (int8, error) { return parseSigned[int8](s, 8) }, func(v []int8) ply.Property { return ply.ListChar(v) })
	case ply.TypeUChar:
		return asciiList(r, n, t, func(s string) (uint8, error) { return parseUnsigned[uint8](s, 8) }, func(v []uint8) ply.Property { return ply.ListUChar(v) })
	case ply.TypeShort:
		return asciiList(r, n, t, func(s string) (int16, error) { return parseSigned[int16](s, 16) }, func(v []int16) ply.Property { return ply.ListShort(v) })
	case ply.TypeUShort:
		return asciiList(r, n, t, func(s string) (uint16, error) { return parseUnsigned[uint16](s, 16) }, func(v []uint16) ply.Property { return ply.ListUShort(v) })
	case ply.TypeInt:
		return asciiList(r, n, t, func(s string) (int32, error) { return parseSigned[int32](s, 32) }, func(v []int32) ply.Property { return ply.ListInt(v) })
	case ply.TypeUInt:
		return asciiList(r, n, t, func(s string) (uint32, error) { return parseUnsigned[uint32](s, 32) }, func(v []uint32) ply.Property { return ply.ListUInt(v) })
	case ply.TypeFloat:
		return asciiList(r, n, t, func(s string) (float32, error) { return parseFloat[float32](s, 32) }, func(v []float32) ply.Property { return ply.ListFloat(v) })
	case ply.TypeDouble:
		return asciiList(r, n, t, func(s string) (float64, error) { return parseFloat[float64](s, 64) }, func(v []float64) ply.Property { return ply.ListDouble(v) })
	}
	return nil, errors.Schema("unknown scalar type " + t.String())
}

func asciiList[T any](r *asciiRecord, n int, t ply.ScalarType, parse func(string) (T, error), wrap func([]T) ply.Property) (ply.Property, error) {
	list := make([]T, 0, capFor(n))
	for i := 0; i < n; i++ {
		s, ok := r.next()
		if !ok {
			return nil, errors.ListUnderflow(r.line, i, n)
		}
		v, err := parse(s)
		if err != nil {
			return nil, errors.Value(r.line, s, t.String(), err)
		}
		list = append(list, v)
	}
	return wrap(list), nil
}

type signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func parseSigned[T signed](s string, bits int) (T, error) {
	v, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, err
	}
	return T(v), nil
}

// parseUnsigned accepts a single leading '+', which strconv.ParseUint does not.
func parseUnsigned[T unsigned](s string, bits int) (T, error) {
	if len(s) > 1 && s[0] == '+' {
		s = s[1:]
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, err
	}
	return T(v), nil
}

// parseFloat ignores range errors; out-of-range values saturate to ±Inf.
func parseFloat[T float32 | float64](s string, bits int) (T, error) {
	v, err := strconv.ParseFloat(s, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return T(v), nil
}

// maxPrealloc bounds the capacity reserved up front for records and lists.
const maxPrealloc = 1 << 12

func capFor(n int) int {
	return max(0, min(n, maxPrealloc))
}

package parser

import (
	"context"
	"encoding/binary"
	"io"

	"github.com/wippyai/plykit/errors"
	plybinary "github.com/wippyai/plykit/parser/internal/binary"
	"github.com/wippyai/plykit/ply"
)

var (
	bigEndian    binary.ByteOrder = binary.BigEndian
	littleEndian binary.ByteOrder = binary.LittleEndian
)

// ReadBinaryElement decodes one binary record of def from r in the given byte order.
func (p *Parser[E]) ReadBinaryElement(r io.Reader, def *ply.ElementDef, order binary.ByteOrder) (E, error) {
	return p.readBinaryElement(plybinary.NewReader(r, order), def, 0)
}

// ReadBigEndianElement decodes one binary_big_endian record of def.
func (p *Parser[E]) ReadBigEndianElement(r io.Reader, def *ply.ElementDef) (E, error) {
	return p.ReadBinaryElement(r, def, bigEndian)
}

// ReadLittleEndianElement decodes one binary_little_endian record of def.
func (p *Parser[E]) ReadLittleEndianElement(r io.Reader, def *ply.ElementDef) (E, error) {
	return p.ReadBinaryElement(r, def, littleEndian)
}

func (p *Parser[E]) readBinaryPayloadForElement(ctx context.Context, src Source, loc *location, def *ply.ElementDef, order binary.ByteOrder) ([]E, error) {
	br := plybinary.NewReader(src, order)
	records := make([]E, 0, capFor(def.Count))
	for i := 0; i < def.Count; i++ {
		if err := checkContext(ctx, errors.PhasePayload, loc.line); err != nil {
			return nil, err
		}
		loc.next()
		e, err := p.readBinaryElement(br, def, loc.line)
		if err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	return records, nil
}

func (p *Parser[E]) readBinaryElement(br *plybinary.Reader, def *ply.ElementDef, record int) (E, error) {
	var zero E
	e := p.newElement()
	for _, prop := range def.Properties {
		v, err := p.readBinaryProperty(br, prop, record)
		if err != nil {
			return zero, err
		}
		if err := e.SetProperty(prop.Name, v); err != nil {
			return zero, errors.Materialize(record, prop.Name, err)
		}
	}
	return e, nil
}

func (p *Parser[E]) readBinaryProperty(br *plybinary.Reader, def ply.PropertyDef, record int) (ply.Property, error) {
	if !def.Type.IsList() {
		v, err := br.ReadScalar(def.Type.Scalar)
		if err != nil {
			return nil, readError(def, record, err)
		}
		return v, nil
	}

	if !def.Type.Index.IsInteger() {
		return nil, errors.New(errors.PhasePayload, errors.KindSchema).
			Line(record).
			Value(def.Name).
			Detail("index of list %q must be an integer type, %s declared", def.Name, def.Type.Index).
			Cause(plybinary.ErrNonIntegerIndex).
			Build()
	}
	n, err := br.ReadCount(def.Type.Index)
	if err != nil {
		if errors.Is(err, plybinary.ErrNegativeCount) {
			return nil, errors.New(errors.PhasePayload, errors.KindValue).
				Line(record).
				Value(def.Name).
				Detail("negative count for list %q", def.Name).
				Cause(err).
				Build()
		}
		return nil, readError(def, record, err)
	}
	if limit := p.opts.MaxListLength; limit > 0 && n > limit {
		return nil, errors.New(errors.PhasePayload, errors.KindValue).
			Line(record).
			Value(def.Name).
			Detail("list %q of length %d exceeds limit %d", def.Name, n, limit).
			Build()
	}
	v, err := br.ReadList(def.Type.Scalar, n)
	if err != nil {
		return nil, readError(def, record, err)
	}
	return v, nil
}

// readError classifies a reader failure: an undecodable declared type is a
// schema error, anything else is I/O.
func readError(def ply.PropertyDef, record int, err error) error {
	if errors.Is(err, plybinary.ErrUnknownType) {
		return errors.New(errors.PhasePayload, errors.KindSchema).
			Line(record).
			Value(def.Name).
			Detail("property %q has undecodable type %s", def.Name, def.Type).
			Cause(err).
			Build()
	}
	return errors.IO(errors.PhasePayload, record, err)
}

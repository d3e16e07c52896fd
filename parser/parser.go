package parser

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/plykit/errors"
	"github.com/wippyai/plykit/ply"
)

// Parser decodes PLY data into records of type E.
//
// A Parser holds no per-decode state and may be shared between goroutines
// decoding independent sources.
type Parser[E ply.Element] struct {
	newElement func() E
	opts       options
}

// New creates a parser that builds every record with newElement.
func New[E ply.Element](newElement func() E, opts ...Option) *Parser[E] {
	p := &Parser[E]{newElement: newElement}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// NewDefault creates a parser producing ply.DefaultElement records.
func NewDefault(opts ...Option) *Parser[ply.DefaultElement] {
	return New(ply.NewDefaultElement, opts...)
}

// Config returns the effective configuration.
func (p *Parser[E]) Config() Config {
	return p.opts.Config
}

func (p *Parser[E]) log() *zap.Logger {
	if p.opts.logger != nil {
		return p.opts.logger
	}
	return Logger()
}

// ReadPly decodes a complete file: header, then the payload of every
// declared element in header order. r is wrapped in a buffered reader unless
// it already implements Source. Nothing is returned on failure.
func (p *Parser[E]) ReadPly(ctx context.Context, r io.Reader) (*ply.Ply[E], error) {
	src, release := getSource(r)
	defer release()

	var loc location
	header, err := p.readHeader(ctx, src, &loc)
	if err != nil {
		return nil, err
	}
	payload, err := p.readPayload(ctx, src, &loc, &header)
	if err != nil {
		return nil, err
	}
	return &ply.Ply[E]{Header: header, Payload: payload}, nil
}

// ReadPayload decodes the records of every element declared in header.
// Line numbers in errors count from the start of the payload.
func (p *Parser[E]) ReadPayload(ctx context.Context, src Source, header *ply.Header) (*ply.Payload[E], error) {
	var loc location
	return p.readPayload(ctx, src, &loc, header)
}

// ReadPayloadForElement decodes the def.Count records of a single element
// in the encoding declared by header.
func (p *Parser[E]) ReadPayloadForElement(ctx context.Context, src Source, def *ply.ElementDef, header *ply.Header) ([]E, error) {
	var loc location
	return p.readElements(ctx, src, &loc, def, header.Encoding)
}

func (p *Parser[E]) readPayload(ctx context.Context, src Source, loc *location, header *ply.Header) (*ply.Payload[E], error) {
	payload := ply.NewPayload[E]()
	for i := range header.Elements {
		def := &header.Elements[i]
		records, err := p.readElements(ctx, src, loc, def, header.Encoding)
		if err != nil {
			return nil, err
		}
		payload.Set(def.Name, records)
		p.log().Debug("element decoded",
			zap.String("element", def.Name),
			zap.Int("records", len(records)),
		)
	}
	return payload, nil
}

func (p *Parser[E]) readElements(ctx context.Context, src Source, loc *location, def *ply.ElementDef, enc ply.Encoding) ([]E, error) {
	switch enc {
	case ply.Ascii:
		return p.readAsciiPayloadForElement(ctx, src, loc, def)
	case ply.BinaryBigEndian:
		return p.readBinaryPayloadForElement(ctx, src, loc, def, bigEndian)
	case ply.BinaryLittleEndian:
		return p.readBinaryPayloadForElement(ctx, src, loc, def, littleEndian)
	}
	return nil, errors.New(errors.PhasePayload, errors.KindSchema).
		Value(enc).
		Detail("unsupported encoding %s", enc).
		Build()
}

func checkContext(ctx context.Context, phase errors.Phase, line int) error {
	if err := ctx.Err(); err != nil {
		return errors.IO(phase, line, err)
	}
	return nil
}

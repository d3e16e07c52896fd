package parser

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/plykit/errors"
	"github.com/wippyai/plykit/grammar"
	"github.com/wippyai/plykit/ply"
)

// ReadHeader reads header lines from src up to and including end_header.
// On success src is positioned at the first payload byte.
func (p *Parser[E]) ReadHeader(ctx context.Context, src Source) (*ply.Header, error) {
	var loc location
	h, err := p.readHeader(ctx, src, &loc)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ReadHeaderLine parses a single header line.
func (p *Parser[E]) ReadHeaderLine(line string) (grammar.Line, error) {
	l, err := grammar.ParseLine(line)
	if err != nil {
		return nil, errors.Syntax(0, cleanLine(line), err)
	}
	return l, nil
}

func (p *Parser[E]) readHeader(ctx context.Context, src Source, loc *location) (ply.Header, error) {
	if err := p.readMagic(ctx, src, loc); err != nil {
		return ply.Header{}, err
	}

	var (
		header ply.Header
		format *grammar.Format
	)

readLines:
	for {
		line, err := nextHeaderLine(ctx, src, loc)
		if err != nil {
			return ply.Header{}, err
		}
		l, err := grammar.ParseLine(line)
		if err != nil {
			return ply.Header{}, errors.Syntax(loc.line, cleanLine(line), err)
		}

		switch v := l.(type) {
		case grammar.MagicNumber:
			return ply.Header{}, errors.New(errors.PhaseHeader, errors.KindUnexpectedLine).
				Line(loc.line).
				Text(cleanLine(line)).
				Detail("unexpected 'ply' found").
				Build()

		case grammar.Format:
			if format == nil {
				format = &v
			} else if *format != v {
				return ply.Header{}, errors.New(errors.PhaseHeader, errors.KindContradictingFormat).
					Line(loc.line).
					Text(cleanLine(line)).
					Value(v).
					Detail("found contradicting format definition: encoding %s, version %s; previous definition: encoding %s, version %s",
						v.Encoding, v.Version, format.Encoding, format.Version).
					Build()
			}

		case grammar.ObjInfo:
			header.ObjInfos = append(header.ObjInfos, v.Text)

		case grammar.Comment:
			header.Comments = append(header.Comments, v.Text)

		case grammar.Element:
			header.Elements = append(header.Elements, v.Def)

		case grammar.Property:
			if len(header.Elements) == 0 {
				return ply.Header{}, errors.New(errors.PhaseHeader, errors.KindOrphanProperty).
					Line(loc.line).
					Text(cleanLine(line)).
					Value(v.Def.Name).
					Detail("property %q found without preceding element", v.Def.Name).
					Build()
			}
			header.Elements[len(header.Elements)-1].AddProperty(v.Def)

		case grammar.EndHeader:
			break readLines
		}
	}

	if format == nil {
		return ply.Header{}, errors.New(errors.PhaseHeader, errors.KindMissingFormat).
			Line(loc.line).
			Detail("no format line found").
			Build()
	}
	header.Encoding = format.Encoding
	header.Version = format.Version

	p.log().Debug("header decoded",
		zap.Stringer("encoding", header.Encoding),
		zap.Stringer("version", header.Version),
		zap.Int("elements", len(header.Elements)),
		zap.Int("comments", len(header.Comments)),
	)
	return header, nil
}

// readMagic consumes blank lines and the magic number line.
func (p *Parser[E]) readMagic(ctx context.Context, src Source, loc *location) error {
	for {
		line, err := nextHeaderLine(ctx, src, loc)
		if err != nil {
			return err
		}
		if strings.Trim(line, " \t\r\n") == "" {
			continue
		}
		l, err := grammar.ParseLine(line)
		if err != nil {
			return errors.New(errors.PhaseHeader, errors.KindSyntax).
				Line(loc.line).
				Text(cleanLine(line)).
				Detail("expected magic number 'ply'").
				Cause(err).
				Build()
		}
		if _, ok := l.(grammar.MagicNumber); !ok {
			return errors.New(errors.PhaseHeader, errors.KindUnexpectedLine).
				Line(loc.line).
				Text(cleanLine(line)).
				Value(l).
				Detail("expected magic number 'ply', but saw %s line", lineKind(l)).
				Build()
		}
		return nil
	}
}

// nextHeaderLine reads one line, advancing loc. End of input inside the
// header is reported as io.ErrUnexpectedEOF.
func nextHeaderLine(ctx context.Context, src Source, loc *location) (string, error) {
	if err := checkContext(ctx, errors.PhaseHeader, loc.line); err != nil {
		return "", err
	}
	loc.next()
	line, err := readLine(src)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", errors.IO(errors.PhaseHeader, loc.line, err)
	}
	return line, nil
}

func cleanLine(s string) string {
	return strings.TrimRight(s, "\r\n")
}

func lineKind(l grammar.Line) string {
	switch l.(type) {
	case grammar.MagicNumber:
		return grammar.KeywordMagic
	case grammar.Format:
		return grammar.KeywordFormat
	case grammar.Comment:
		return grammar.KeywordComment
	case grammar.ObjInfo:
		return grammar.KeywordObjInfo
	case grammar.Element:
		return grammar.KeywordElement
	case grammar.Property:
		return grammar.KeywordProperty
	case grammar.EndHeader:
		return grammar.KeywordEndHeader
	}
	return "unknown"
}

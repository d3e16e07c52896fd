package plykit

import (
	"bufio"
	"context"
	"io"

	"github.com/wippyai/plykit/parser"
	"github.com/wippyai/plykit/ply"
)

var defaultParser = parser.NewDefault()

// Decode reads a complete PLY file from r into generic records.
func Decode(ctx context.Context, r io.Reader) (*ply.Ply[ply.DefaultElement], error) {
	return defaultParser.ReadPly(ctx, r)
}

// DecodeHeader reads only the header from r. Bytes past end_header may have
// been buffered and are not left in r.
func DecodeHeader(ctx context.Context, r io.Reader) (*ply.Header, error) {
	src, ok := r.(parser.Source)
	if !ok {
		src = bufio.NewReader(r)
	}
	return defaultParser.ReadHeader(ctx, src)
}

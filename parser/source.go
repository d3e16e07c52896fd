package parser

import (
	"bufio"
	"io"
	"strings"
	"sync"

	"github.com/wippyai/plykit/errors"
)

// Source is the buffered byte stream the decoder reads from.
// *bufio.Reader satisfies it. A decode call owns its Source exclusively.
type Source interface {
	io.Reader
	io.ByteScanner
}

// sourcePool pools bufio.Reader instances wrapping plain readers
var sourcePool = sync.Pool{
	New: func() interface{} {
		return bufio.NewReader(nil)
	},
}

// getSource returns r itself when it already is a Source, otherwise a pooled
// bufio.Reader. release must be called once decoding is done.
func getSource(r io.Reader) (src Source, release func()) {
	if s, ok := r.(Source); ok {
		return s, func() {}
	}
	br := sourcePool.Get().(*bufio.Reader)
	br.Reset(r)
	return br, func() {
		br.Reset(nil)
		sourcePool.Put(br)
	}
}

// readLine reads one line terminated by "\n", "\r" or "\r\n" and returns it
// with the terminator. At end of input a non-empty unterminated line is
// returned with a nil error; io.EOF is returned only when nothing was read.
func readLine(src Source) (string, error) {
	var b strings.Builder
	for {
		c, err := src.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return b.String(), nil
			}
			return b.String(), err
		}
		b.WriteByte(c)
		switch c {
		case '\n':
			return b.String(), nil
		case '\r':
			next, err := src.ReadByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return b.String(), nil
				}
				return b.String(), err
			}
			if next == '\n' {
				b.WriteByte(next)
			} else if err := src.UnreadByte(); err != nil {
				return b.String(), err
			}
			return b.String(), nil
		}
	}
}

// Package minimap renders a text stream as a compact braille overview of
// where its non-whitespace content is, four row-slots per output line and
// two character positions per braille cell.
package minimap

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/ZNielsen/code-minimap/internal/consts"
	"github.com/ZNielsen/code-minimap/internal/errors"
	"github.com/ZNielsen/code-minimap/internal/iointernal"
	"github.com/ZNielsen/code-minimap/internal/logx"
)

type Encoding = iointernal.Encoding

const (
	UTF8      = iointernal.UTF8
	UTF8Lossy = iointernal.UTF8Lossy
	UTF16     = iointernal.UTF16
)

func ParseEncoding(s string) (Encoding, error) { return iointernal.ParseEncoding(s) }

var (
	ErrNilParam        = consts.ErrNilParam
	ErrInvalidScale    = consts.ErrInvalidScale
	ErrInvalidPadding  = consts.ErrInvalidPadding
	ErrInvalidUTF8     = consts.ErrInvalidUTF8
	ErrUnknownEncoding = consts.ErrUnknownEnc
)

var _ logx.LoggerProvider = (*Minimap)(nil)

// Minimap holds a validated rendering configuration. It keeps no state
// between calls to Write and can be reused.
type Minimap struct {
	hscale   float64
	vscale   float64
	padding  int
	padded   bool
	encoding Encoding
	logger   *slog.Logger
}

func New(opts ...Option) (*Minimap, error) {
	m := &Minimap{
		hscale:   1,
		vscale:   1,
		encoding: UTF8,
	}
	if err := m.SetOptions(opts...); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Minimap) Logger() *slog.Logger {
	if m == nil {
		return nil
	}
	return m.logger
}

// Write reads r line by line and writes one braille line per four row-slots
// to w. It stops at the first read or write failure; lines written before
// the failure stay in w.
func (m *Minimap) Write(w io.Writer, r io.Reader) error {
	if m == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	if err := errors.NilParam(w, r); err != nil {
		return err
	}
	lines, err := iointernal.NewLineReader(r, m.encoding)
	if err != nil {
		return err
	}
	fr := newFrameReader(lines, m.vscale)
	var frames int
	for {
		frame, err := fr.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		cells, err := writeFrame(w, frame.Scale(m.hscale), m.padding, m.padded)
		if err != nil {
			return errors.WrapPrefix(err, `write frame `+strconv.Itoa(frames+1), 0)
		}
		frames++
		logx.Debug(`frame written`, m, `frame`, frames, `cells`, cells)
	}
	logx.Info(`minimap written`, m, `lines`, fr.lineNo, `frames`, frames)
	return nil
}

// Write renders the minimap of r to w.
func Write(w io.Writer, r io.Reader, opts ...Option) error {
	m, err := New(opts...)
	if err != nil {
		return err
	}
	return m.Write(w, r)
}

// Print renders the minimap of r to the standard output.
func Print(r io.Reader, opts ...Option) error {
	return Write(os.Stdout, r, opts...)
}

// String renders the minimap of r into a string.
func String(r io.Reader, opts ...Option) (string, error) {
	buf := &bytes.Buffer{}
	if err := Write(buf, r, opts...); err != nil {
		return ``, err
	}
	if !utf8.Valid(buf.Bytes()) {
		panic(errors.New(consts.ErrInvalidOutput))
	}
	return buf.String(), nil
}

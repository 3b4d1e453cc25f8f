package iointernal

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ZNielsen/code-minimap/internal/consts"
	"github.com/ZNielsen/code-minimap/internal/errors"
)

// Encoding selects how the input bytes are turned into lines of text.
type Encoding int

const (
	// UTF8 fails on the first line that is not valid UTF-8.
	UTF8 Encoding = iota
	// UTF8Lossy replaces invalid byte sequences with U+FFFD.
	UTF8Lossy
	// UTF16 decodes UTF-16, little endian unless a byte order mark says otherwise.
	UTF16
)

var encodingNames = map[Encoding]string{
	UTF8:      `utf8`,
	UTF8Lossy: `utf8lossy`,
	UTF16:     `utf16`,
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return `unknown`
}

// ParseEncoding is the inverse of Encoding.String, ignoring case and dashes.
func ParseEncoding(s string) (Encoding, error) {
	s = strings.ReplaceAll(strings.ToLower(s), `-`, ``)
	for enc, name := range encodingNames {
		if s == name {
			return enc, nil
		}
	}
	return UTF8, errors.WrapPrefix(consts.ErrUnknownEnc, `"`+s+`"`, 0)
}

type LineReader interface {
	// ReadLine returns the next line without its line terminator.
	// io.EOF is returned unwrapped once the input is exhausted.
	ReadLine() (string, error)
}

func NewLineReader(rdr io.Reader, enc Encoding) (LineReader, error) {
	if err := errors.NilParam(rdr); err != nil {
		return nil, err
	}
	switch enc {
	case UTF8:
	case UTF8Lossy:
		rdr = transform.NewReader(rdr, unicode.UTF8BOM.NewDecoder())
	case UTF16:
		rdr = transform.NewReader(rdr, unicode.BOMOverride(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()))
	default:
		return nil, errors.WrapPrefix(consts.ErrUnknownEnc, enc.String(), 0)
	}
	br, ok := rdr.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(rdr)
	}
	return &lineReader{
		reader: br,
		strict: enc == UTF8,
	}, nil
}

var _ LineReader = (*lineReader)(nil)

type lineReader struct {
	reader *bufio.Reader
	strict bool
	read   int
}

func (r *lineReader) ReadLine() (string, error) {
	if r == nil || r.reader == nil {
		return ``, errors.New(consts.ErrNilReceiver)
	}
	line, err := r.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return ``, errors.New(err)
	}
	if err == io.EOF && len(line) == 0 {
		return ``, io.EOF
	}
	if strings.HasSuffix(line, "\n") {
		line = strings.TrimSuffix(line[:len(line)-1], "\r")
	}
	if r.read == 0 && r.strict {
		// the lossy and utf16 decoders drop the byte order mark themselves
		line = strings.TrimPrefix(line, "\uFEFF")
	}
	r.read++
	if r.strict && !utf8.ValidString(line) {
		return ``, errors.New(consts.ErrInvalidUTF8)
	}
	return line, nil
}

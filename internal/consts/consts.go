package consts

import (
	"errors"
	"math"
)

var (
	ErrNilParam       = errors.New(`nil parameter`)
	ErrNilReceiver    = errors.New(`nil receiver`)
	ErrInvalidScale   = errors.New(`scale factor must be between 0 and 2147483647`)
	ErrInvalidPadding = errors.New(`padding must not be negative`)
	ErrInvalidUTF8    = errors.New(`line is not valid UTF-8`)
	ErrInvalidOutput  = errors.New(`minimap output is not valid UTF-8`)
	ErrUnknownEnc     = errors.New(`unknown input encoding`)
	ErrNoInput        = errors.New(`no input: pass a file or pipe text into stdin`)
)

const (
	LibraryName = `minimap`

	// FrameRows is the number of row-slots packed into one braille line.
	FrameRows = 4

	// MaxScale bounds the scale factors so that scaled line indices and
	// character positions stay far from the int range.
	MaxScale = math.MaxInt32
)

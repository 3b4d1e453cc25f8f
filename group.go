package minimap

import (
	"io"
	"strconv"

	"github.com/ZNielsen/code-minimap/internal/consts"
	"github.com/ZNielsen/code-minimap/internal/errors"
	"github.com/ZNielsen/code-minimap/internal/iointernal"
)

// frameReader groups consecutive lines that scale to the same row-slot and
// hands out the row-slots four at a time. It holds no more than the extent of
// the row-slot currently being filled.
type frameReader struct {
	lines  iointernal.LineReader
	vscale float64

	lineNo  int // lines consumed so far
	slot    int
	current extent
	open    bool // current holds at least one line
	eof     bool
}

func newFrameReader(lines iointernal.LineReader, vscale float64) *frameReader {
	return &frameReader{lines: lines, vscale: vscale}
}

// next returns the next unscaled frame and io.EOF once every row-slot has
// been handed out.
func (fr *frameReader) next() (Frame, error) {
	var (
		frame Frame
		rows  int
	)
	for rows < consts.FrameRows && !fr.eof {
		// slots depend on the line index only, so a row-slot is complete
		// before the line that opens the next one has been read
		slot := scale(fr.lineNo, fr.vscale)
		if fr.open && slot != fr.slot {
			frame[rows] = fr.current.span()
			rows++
			fr.current = extent{}
			fr.open = false
			continue
		}
		line, err := fr.lines.ReadLine()
		if err == io.EOF {
			fr.eof = true
			if fr.open {
				frame[rows] = fr.current.span()
				rows++
				fr.open = false
			}
			break
		}
		if err != nil {
			return Frame{}, errors.WrapPrefix(err, `read line `+strconv.Itoa(fr.lineNo+1), 0)
		}
		fr.lineNo++
		fr.slot = slot
		fr.open = true
		fr.current.add(line)
	}
	if rows == 0 {
		return Frame{}, io.EOF
	}
	return frame, nil
}

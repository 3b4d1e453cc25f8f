package minimap

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/ZNielsen/code-minimap/internal/consts"
)

// Frame holds the spans of four consecutive row-slots, top row first.
// Row-slots missing at the end of the input are left as 0..0.
type Frame [consts.FrameRows]Span

// Scale floors start and end of every span independently.
func (f Frame) Scale(factor float64) Frame {
	for i := range f {
		f[i] = Span{
			Start: scale(f[i].Start, factor),
			End:   scale(f[i].End, factor),
		}
	}
	return f
}

// End is the largest span end in the frame, the number of character
// positions the encoded line has to cover.
func (f Frame) End() int {
	var end int
	for _, s := range f {
		end = max(end, s.End)
	}
	return end
}

// mask has bit r set when row r has content at pos.
func (f Frame) mask(pos int) int {
	var m int
	for r, s := range f {
		if s.Contains(pos) {
			m |= 1 << r
		}
	}
	return m
}

// scale truncates toward zero, which is floor for the non-negative values
// used here. Products beyond the range of I saturate at its maximum so the
// result stays non-negative and monotonic.
func scale[I constraints.Integer, F constraints.Float](x I, factor F) I {
	limit := maxOf[I]()
	if p := float64(x) * float64(factor); p < float64(limit) {
		return I(p)
	}
	return limit
}

func maxOf[I constraints.Integer]() I {
	var zero I
	if ^zero > 0 {
		return ^zero
	}
	bits := unsafe.Sizeof(zero) * 8
	return I(uint64(1)<<(bits-1) - 1)
}

package minimap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale(t *testing.T) {
	assert.Equal(t, 0, scale(0, 0.3))
	assert.Equal(t, 0, scale(7, 0.0))
	assert.Equal(t, 7, scale(7, 1.0))
	assert.Equal(t, 3, scale(7, 0.5))
	assert.Equal(t, 14, scale(7, 2.0))
	assert.Equal(t, 2, scale(10, 0.29))
	assert.Equal(t, uint8(1), scale(uint8(3), float32(0.5)))
}

func TestScaleSaturates(t *testing.T) {
	assert.Equal(t, int8(127), scale(int8(100), 2.0))
	assert.Equal(t, uint8(255), scale(uint8(200), 2.0))
	assert.Equal(t, math.MaxInt, scale(math.MaxInt/2, 4.0))
	assert.Equal(t, math.MaxInt, scale(10, 1e19))
	// monotonic across the saturation point
	assert.LessOrEqual(t, scale(1, 1e19), scale(2, 1e19))
}

func TestFrameScale(t *testing.T) {
	frame := Frame{{0, 4}, {1, 3}, {}, {3, 5}}
	assert.Equal(t, frame, frame.Scale(1))
	assert.Equal(t, Frame{{0, 2}, {0, 1}, {}, {1, 2}}, frame.Scale(0.5))
	assert.Equal(t, Frame{{0, 8}, {2, 6}, {}, {6, 10}}, frame.Scale(2))
	assert.Equal(t, Frame{}, frame.Scale(0))
	// the receiver is a copy
	assert.Equal(t, Frame{{0, 4}, {1, 3}, {}, {3, 5}}, frame)
}

func TestFrameEnd(t *testing.T) {
	assert.Equal(t, 0, Frame{}.End())
	assert.Equal(t, 5, Frame{{0, 4}, {}, {3, 5}, {1, 2}}.End())
}

func TestFrameMask(t *testing.T) {
	frame := Frame{{0, 3}, {1, 3}, {2, 3}, {3, 4}}
	assert.Equal(t, 0b0001, frame.mask(0))
	assert.Equal(t, 0b0011, frame.mask(1))
	assert.Equal(t, 0b0111, frame.mask(2))
	assert.Equal(t, 0b1000, frame.mask(3))
	assert.Equal(t, 0, frame.mask(4))
}

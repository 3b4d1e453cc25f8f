package minimap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtent(t *testing.T) {
	tests := map[string]struct {
		lines []string
		want  Span
	}{
		"no lines":           {nil, Span{}},
		"empty line":         {[]string{``}, Span{}},
		"whitespace only":    {[]string{"  \t ", "\v\f"}, Span{}},
		"single char":        {[]string{`a`}, Span{0, 1}},
		"trimmed":            {[]string{`  ab c  `}, Span{2, 6}},
		"union":              {[]string{`  a`, `b`, `    c `}, Span{0, 5}},
		"blank ignored":      {[]string{`   `, `  x`}, Span{2, 3}},
		"code points":        {[]string{`ää ö`}, Span{0, 4}},
		"unicode spaces":     {[]string{"\u3000 x\u00a0"}, Span{2, 3}},
		"next line is space": {[]string{"\u0085z"}, Span{1, 2}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var e extent
			for _, line := range tc.lines {
				e.add(line)
			}
			got := e.span()
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSpan(t *testing.T) {
	s := Span{Start: 2, End: 4}
	assert.False(t, s.Empty())
	assert.False(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
	assert.True(t, Span{}.Empty())
	assert.False(t, Span{}.Contains(0))
}

package minimap

import (
	"log/slog"
	"math"

	"github.com/ZNielsen/code-minimap/internal/consts"
	"github.com/ZNielsen/code-minimap/internal/errors"
)

type Option interface {
	ApplyOption(m *Minimap) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Minimap) error

func (o OptFunc) ApplyOption(m *Minimap) error { return o(m) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(m *Minimap) error { return m.SetOptions([]Option(o)...) }

func (m *Minimap) SetOptions(opts ...Option) error {
	if m == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(m); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetHScale sets the horizontal scale factor, 1 by default.
func SetHScale(factor float64) Option {
	return OptFunc(func(m *Minimap) error {
		if err := checkScale(factor); err != nil {
			return err
		}
		m.hscale = factor
		return nil
	})
}

// SetVScale sets the vertical scale factor, 1 by default. 0 merges the whole
// input into a single row-slot.
func SetVScale(factor float64) Option {
	return OptFunc(func(m *Minimap) error {
		if err := checkScale(factor); err != nil {
			return err
		}
		m.vscale = factor
		return nil
	})
}

// SetPadding pads every output line with spaces to at least width cells.
func SetPadding(width int) Option {
	return OptFunc(func(m *Minimap) error {
		if width < 0 {
			return errors.Errorf(`%w: %d`, consts.ErrInvalidPadding, width)
		}
		m.padding = width
		m.padded = true
		return nil
	})
}

// NoPadding undoes SetPadding.
var NoPadding Option = OptFunc(func(m *Minimap) error { m.padding, m.padded = 0, false; return nil })

func SetEncoding(enc Encoding) Option {
	return OptFunc(func(m *Minimap) error {
		if _, err := ParseEncoding(enc.String()); err != nil {
			return err
		}
		m.encoding = enc
		return nil
	})
}

func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(m *Minimap) error {
		if enable {
			if h == nil {
				m.logger = slog.Default()
			} else {
				m.logger = slog.New(h)
			}
		} else {
			m.logger = nil
		}
		return nil
	})
}

func checkScale(factor float64) error {
	if factor < 0 || math.IsNaN(factor) || factor > consts.MaxScale {
		return errors.Errorf(`%w: %v`, consts.ErrInvalidScale, factor)
	}
	return nil
}

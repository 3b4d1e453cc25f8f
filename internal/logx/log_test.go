package logx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ZNielsen/code-minimap/internal/logx"
)

func TestLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	prov := logx.Prov(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	logx.Debug(`hidden`, prov)
	logx.Info(`shown`, prov, `k`, 1)
	assert.NotContains(t, buf.String(), `hidden`)
	assert.Contains(t, buf.String(), `msg=shown k=1`)
}

func TestNilProvider(t *testing.T) {
	assert.NotPanics(t, func() {
		logx.Info(`x`, nil)
		logx.Debug(`x`, logx.Prov(nil))
	})
	assert.True(t, logx.IsErr(errors.New(`x`), nil, slog.LevelError))
	assert.False(t, logx.IsErr(nil, logx.Prov(nil), slog.LevelError))
}

func TestIsErrJoined(t *testing.T) {
	buf := &bytes.Buffer{}
	prov := logx.Prov(slog.New(slog.NewTextHandler(buf, nil)))
	assert.True(t, logx.IsErr(errors.Join(errors.New(`first`), errors.New(`second`)), prov, slog.LevelError))
	assert.Contains(t, buf.String(), `msg=first`)
	assert.Contains(t, buf.String(), `msg=second`)
}

func TestTimeIt(t *testing.T) {
	buf := &bytes.Buffer{}
	prov := logx.Prov(slog.New(slog.NewTextHandler(buf, nil)))
	errFn := errors.New(`failed`)
	err := logx.TimeIt(func() error { return errFn }, `render`, prov, `input`, `stdin`)
	assert.ErrorIs(t, err, errFn)
	assert.Contains(t, buf.String(), `msg=render duration=`)
	assert.Contains(t, buf.String(), `input=stdin`)
	assert.Error(t, logx.TimeIt(nil, ``, prov))
}

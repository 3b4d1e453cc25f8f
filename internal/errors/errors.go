package errors

import (
	"runtime"

	errorsGo "github.com/go-errors/errors"

	"github.com/ZNielsen/code-minimap/internal/consts"
)

func New(obj any) *Error {
	// don't overwrite origin of failure
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

// remaining "github.com/go-errors/errors" symbols

type Error = errorsGo.Error

func Errorf(format string, a ...interface{}) *Error { return errorsGo.Errorf(format, a...) }

func Wrap(e interface{}, skip int) *Error { return errorsGo.Wrap(e, skip+1) }

// WrapPrefix keeps the stack of an already wrapped error and only prepends the prefix.
func WrapPrefix(e interface{}, prefix string, skip int) *Error {
	return errorsGo.WrapPrefix(e, prefix, skip+1)
}

// NilParam returns an error with the function name if any of the arguments are nil
func NilParam(args ...any) error {
	return errMsgNilTester(consts.ErrNilParam, 3, args...)
}

func errMsgNilTester(sentinel error, skip int, args ...any) error {
	for i := range args {
		if args[i] == nil {
			goto anyNil
		}
	}
	return nil
anyNil:
	return errMsg(sentinel, skip)
}

func errMsg(sentinel error, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return Wrap(sentinel, skip)
	}
	return WrapPrefix(sentinel, runtime.FuncForPC(pc).Name()+`()`, skip)
}

package codec

import (
	"errors"
	"io"

	propbin "github.com/reoring/propbin"
	eng "github.com/reoring/propbin/internal/engine"
	"github.com/reoring/propbin/wire"
)

// errNullBag signals a null Pointer where a bag was expected. Fields treat it
// as absence; containers reject it.
var errNullBag = errors.New("null pointer")

// tracker keeps the path of the value being processed as a mutable stack so
// that rendering only happens when an error is built.
type tracker struct {
	path propbin.Path
}

func (t *tracker) push(s propbin.Segment) { t.path = append(t.path, s) }
func (t *tracker) pop()                   { t.path = t.path[:len(t.path)-1] }

func (t *tracker) fail(code string) *propbin.Error {
	return propbin.NewError(code, t.path.String())
}

// convert maps wire and engine errors onto *propbin.Error at the current
// path. Errors that already are *propbin.Error pass through.
func (t *tracker) convert(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := propbin.AsError(err); ok {
		return err
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		e := t.fail(ie.Code)
		e.Key = ie.Key
		e.Message = ie.Message
		return e
	}
	code := propbin.CodeMalformedInput
	switch {
	case errors.Is(err, wire.ErrTruncated), errors.Is(err, io.ErrUnexpectedEOF):
		code = propbin.CodeTruncatedInput
	case errors.Is(err, wire.ErrInvalidUTF8):
		code = propbin.CodeUTF8
	}
	e := t.fail(code)
	e.Cause = err
	e.Message = ""
	var oe *wire.OffsetError
	if errors.As(err, &oe) {
		e.Offset = oe.Offset
		e.Cause = oe.Err
	}
	return e
}

package errors

import (
	stderrors "errors"
	"fmt"
)

// Error attaches an ErrorCode to an underlying error so it can cross package
// boundaries and still be rendered as a coded response
type Error struct {
	Code ErrorCode
	Err  error
}

// Wrap returns err tagged with code, or nil when err is nil
func Wrap(code ErrorCode, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the code of the outermost Error in err's chain
func CodeOf(err error) (ErrorCode, bool) {
	var coded *Error
	if stderrors.As(err, &coded) {
		return coded.Code, true
	}
	return "", false
}

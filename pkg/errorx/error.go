package errorx

import "fmt"

type Error struct {
	Code    Code
	Message string
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) Error() string {
	return e.Message
}

// Is reports whether target is an errorx.Error carrying the same code. It lets callers write
// errors.Is(err, errorx.Error{Code: errorx.NotFound}) without caring about the message.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

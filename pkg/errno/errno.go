package errno

import "errors"

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// WithMessage keeps the code and replaces the message.
func (e Errno) WithMessage(msg string) Errno {
	e.Message = msg
	return e
}

// Decode tries to convert an error to Errno.
// Wrapped errors (fmt.Errorf("...: %w", errno.X)) keep their code, the message
// carries the full chain so the operator sees the context.
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var typed Errno
	if errors.As(err, &typed) {
		return typed.Code, err.Error()
	}
	var ptr *Errno
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Code, err.Error()
	}
	return InternalServerError.Code, err.Error()
}

// Common Errors
var (
	OK                  = Errno{Code: 0, Message: "Success"}
	InternalServerError = Errno{Code: 10001, Message: "Internal server error"}
	ErrBind             = Errno{Code: 10002, Message: "Error occurred while binding the request body to the struct"}
	ErrNotFound         = Errno{Code: 10005, Message: "Resource not found"}
	ErrTooManyRequests  = Errno{Code: 10006, Message: "Too many requests"}
)

// Transaction building errors (30000+)
var (
	InvalidAddress   = Errno{Code: 30001, Message: "invalid address"}
	InvalidAmount    = Errno{Code: 30002, Message: "invalid amount"}
	UnknownOperation = Errno{Code: 30003, Message: "unknown operation"}
	TypeMismatch     = Errno{Code: 30004, Message: "argument type mismatch"}
	RemoteRejected   = Errno{Code: 30005, Message: "remote rejected"}
	InvalidTxHash    = Errno{Code: 30006, Message: "invalid safe transaction hash"}
	Cancelled        = Errno{Code: 30007, Message: "cancelled by operator"}
)

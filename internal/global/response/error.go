package response

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Error 业务错误类型，Code 同时作为 HTTP 状态码返回
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"msg"`
	Origin  string `json:"origin,omitempty"`
	// cause 保存原始错误，供 Unwrap() 和 Sentry 错误链提取
	cause error
	// stack 保存堆栈信息，供 Sentry 堆栈提取
	stack pkgerrors.StackTrace
}

func newError(code int32, msg string) *Error {
	return &Error{
		Code:    code,
		Message: msg,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Message)
}

// GetCode 返回错误码，实现 sentry 上报用的 CodedError 接口
func (e *Error) GetCode() int32 {
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace 实现 pkg/errors 的 stackTracer 接口
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	if e.cause != nil {
		var st stackTracer
		if errors.As(e.cause, &st) {
			return st.StackTrace()
		}
	}
	return nil
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// WithOrigin 附带原始错误，Origin 仅在 debug 模式下写入响应
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}

	wrappedErr := ensureStack(err)

	newErr := &Error{
		Code:    e.Code,
		Message: e.Message,
		Origin:  fmt.Sprintf("%v", wrappedErr),
		cause:   wrappedErr,
	}

	var st stackTracer
	if errors.As(wrappedErr, &st) {
		newErr.stack = st.StackTrace()
	}

	return newErr
}

// WithTips 覆盖展示给前端的提示信息，错误码不变
func (e *Error) WithTips(msg string) *Error {
	return &Error{
		Code:    e.Code,
		Message: msg,
		cause:   e.cause,
		stack:   e.stack,
	}
}

func ensureStack(err error) error {
	if err == nil {
		return nil
	}
	var st stackTracer
	if errors.As(err, &st) {
		return err
	}
	return pkgerrors.WithStack(err)
}

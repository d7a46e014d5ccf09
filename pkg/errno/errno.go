package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode      = 200
	BadRequestCode   = 400
	UnauthorizedCode = 401
	ForbiddenCode    = 403
	NotFoundCode     = 404
	ServiceErrCode   = 500
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success      = NewErrNo(SuccessCode, "Success")
	RequestErr   = NewErrNo(BadRequestCode, "Bad request")
	ErrBind      = NewErrNo(BadRequestCode, "Parameter binding failed")
	TokenErr     = NewErrNo(UnauthorizedCode, "Missing or invalid token")
	ForbiddenErr = NewErrNo(ForbiddenCode, "Forbidden")
	NotFoundErr  = NewErrNo(NotFoundCode, "Resource not found")
	ServiceErr   = NewErrNo(ServiceErrCode, "Service internal error")
)

// ConvertErr keeps the original error kind when one was raised and only
// wraps unknown errors as internal.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	e := ErrNo{}
	if errors.As(err, &e) {
		return e
	}
	return ServiceErr.WithMessage(err.Error())
}

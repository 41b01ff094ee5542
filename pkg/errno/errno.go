package errno

import (
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"gorm.io/gorm"
)

const (
	SuccessCode                = 0
	ServiceErrCode             = 10001
	ParamErrCode               = 10002
	AuthorizationFailedErrCode = 10003
	RecordNotFoundErrCode      = 10004
	StorageErrCode             = 10005
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
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedErrCode, "Authorization failed")
	RecordNotFoundErr      = NewErrNo(RecordNotFoundErrCode, "Record not found")
	StorageErr             = NewErrNo(StorageErrCode, "Object storage operation failed")
)

// ConvertErr 将任意error规整为ErrNo gorm的记录缺失统一映射为404语义
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return RecordNotFoundErr
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}

// HTTPStatus 错误码到HTTP状态码的映射
func (e ErrNo) HTTPStatus() int {
	switch e.ErrCode {
	case SuccessCode:
		return consts.StatusOK
	case ParamErrCode:
		return consts.StatusBadRequest
	case AuthorizationFailedErrCode:
		return consts.StatusUnauthorized
	case RecordNotFoundErrCode:
		return consts.StatusNotFound
	default:
		return consts.StatusInternalServerError
	}
}

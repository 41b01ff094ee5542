package errno

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConvertErrPassthrough(t *testing.T) {
	e := ConvertErr(ParamErr)
	assert.Equal(t, int64(ParamErrCode), e.ErrCode)

	e = ConvertErr(ParamErr.WithMessage("video_id missing"))
	assert.Equal(t, int64(ParamErrCode), e.ErrCode)
	assert.Equal(t, "video_id missing", e.ErrMsg)
}

func TestConvertErrWrapped(t *testing.T) {
	// pkg/errors包装后的ErrNo也要能还原
	wrapped := errors.WithMessage(RecordNotFoundErr, "get video")
	e := ConvertErr(wrapped)
	assert.Equal(t, int64(RecordNotFoundErrCode), e.ErrCode)
}

func TestConvertErrGormNotFound(t *testing.T) {
	e := ConvertErr(gorm.ErrRecordNotFound)
	assert.Equal(t, int64(RecordNotFoundErrCode), e.ErrCode)

	e = ConvertErr(errors.WithMessage(gorm.ErrRecordNotFound, "get playlist"))
	assert.Equal(t, int64(RecordNotFoundErrCode), e.ErrCode)
}

func TestConvertErrUnknown(t *testing.T) {
	e := ConvertErr(errors.New("boom"))
	assert.Equal(t, int64(ServiceErrCode), e.ErrCode)
	assert.Equal(t, "boom", e.ErrMsg)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 200, Success.HTTPStatus())
	assert.Equal(t, 400, ParamErr.HTTPStatus())
	assert.Equal(t, 401, AuthorizationFailedErr.HTTPStatus())
	assert.Equal(t, 404, RecordNotFoundErr.HTTPStatus())
	assert.Equal(t, 500, ServiceErr.HTTPStatus())
	assert.Equal(t, 500, StorageErr.HTTPStatus())
}

package errno

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestWithMessageKeepsCode(t *testing.T) {
	err := NotFoundErr.WithMessage("Video not found")
	assert.Equal(t, int64(NotFoundCode), err.ErrCode)
	assert.Equal(t, "Video not found", err.ErrMsg)
	// the shared var must stay untouched
	assert.Equal(t, "Resource not found", NotFoundErr.ErrMsg)
}

func TestConvertErrNil(t *testing.T) {
	e := ConvertErr(nil)
	assert.Equal(t, int64(SuccessCode), e.ErrCode)
}

func TestConvertErrKeepsKind(t *testing.T) {
	e := ConvertErr(ForbiddenErr.WithMessage("Only the video owner may perform this action"))
	assert.Equal(t, int64(ForbiddenCode), e.ErrCode)
	assert.Equal(t, "Only the video owner may perform this action", e.ErrMsg)
}

func TestConvertErrWrapped(t *testing.T) {
	wrapped := errors.WithMessage(RequestErr.WithMessage("Name is required"), "create playlist")
	e := ConvertErr(wrapped)
	assert.Equal(t, int64(BadRequestCode), e.ErrCode)
	assert.Equal(t, "Name is required", e.ErrMsg)
}

func TestConvertErrUnknown(t *testing.T) {
	e := ConvertErr(errors.New("dial tcp: connection refused"))
	assert.Equal(t, int64(ServiceErrCode), e.ErrCode)
}

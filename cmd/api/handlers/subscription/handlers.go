package handlers

import (
	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/pkg/errno"
)

type Response struct {
	StatusCode int64       `json:"statusCode"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(int(Err.ErrCode), Response{
		StatusCode: Err.ErrCode,
		Data:       data,
		Message:    Err.ErrMsg,
		Success:    Err.ErrCode < errno.BadRequestCode,
	})
}

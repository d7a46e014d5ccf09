package handlers

import (
	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/pkg/errno"
)

// Response is the uniform envelope: success mirrors the status code.
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

type VideoListParam struct {
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserId   string `query:"userId"`
}

type PublishVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type UpdateVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

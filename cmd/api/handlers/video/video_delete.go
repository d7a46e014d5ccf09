package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/router/authfunc"
	"vidtube.com/cmd/video/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := authfunc.CurrentUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	videoId, ok := utils.ValidateId(c.Param("videoId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid video id"), nil)
		return
	}

	if err := service.NewVideoService(ctx).DeleteVideo(videoId, userId); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Video deleted successfully"), nil)
}

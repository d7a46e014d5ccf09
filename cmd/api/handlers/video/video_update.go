package handlers

import (
	"context"
	"os"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/api/router/authfunc"
	"vidtube.com/cmd/video/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
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
	var param UpdateVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind error: %v", err)
		SendResponse(c, errno.ErrBind, nil)
		return
	}

	req := &service.UpdateVideoRequest{
		VideoId:     videoId,
		UserId:      userId,
		Title:       param.Title,
		Description: param.Description,
	}
	// thumbnail replacement is optional
	if thumbnailFile, err := c.FormFile("thumbnail"); err == nil {
		thumbnailPath, err := saveTempFile(c, thumbnailFile)
		if err != nil {
			SendResponse(c, err, nil)
			return
		}
		defer os.Remove(thumbnailPath)
		req.ThumbnailPath = thumbnailPath
	}

	video, err := service.NewVideoService(ctx).UpdateVideo(req)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Video updated successfully"), video)
}

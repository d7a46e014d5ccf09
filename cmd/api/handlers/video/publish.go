package handlers

import (
	"context"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"

	"vidtube.com/cmd/api/router/authfunc"
	"vidtube.com/cmd/video/service"
	"vidtube.com/pkg/errno"
)

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := authfunc.CurrentUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param PublishVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind error: %v", err)
		SendResponse(c, errno.ErrBind, nil)
		return
	}

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("Video file is required"), nil)
		return
	}
	thumbnailFile, err := c.FormFile("thumbnail")
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("Thumbnail file is required"), nil)
		return
	}

	videoPath, err := saveTempFile(c, videoFile)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	defer os.Remove(videoPath)
	thumbnailPath, err := saveTempFile(c, thumbnailFile)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	defer os.Remove(thumbnailPath)

	video, err := service.NewVideoService(ctx).PublishVideo(&service.PublishVideoRequest{
		UserId:        userId,
		Title:         param.Title,
		Description:   param.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Video uploaded successfully"), video)
}

// saveTempFile spools an uploaded part to disk; uploads into media storage
// go from a local path.
func saveTempFile(c *app.RequestContext, header *multipart.FileHeader) (string, error) {
	path := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(header.Filename))
	if err := c.SaveUploadedFile(header, path); err != nil {
		return "", errno.ServiceErr.WithMessage("Failed to store uploaded file")
	}
	return path, nil
}

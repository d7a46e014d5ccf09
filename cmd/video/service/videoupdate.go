package service

import (
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/utils"
)

type UpdateVideoRequest struct {
	VideoId       int64
	UserId        int64
	Title         string
	Description   string
	ThumbnailPath string // optional replacement
}

// UpdateVideo rewrites title/description and optionally replaces the
// thumbnail. The new thumbnail is stored before the old object is deleted so
// a failure never leaves the video without one.
func (s *VideoService) UpdateVideo(req *UpdateVideoRequest) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, errno.RequestErr.WithMessage("Title and description are required")
	}
	video, err := db.GetVideo(s.ctx, req.VideoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, err
	}
	if err := utils.RequireOwner(req.UserId, video.UserId, "video"); err != nil {
		return nil, err
	}

	video.Title = req.Title
	video.Description = req.Description
	video.UpdatedAt = utils.NowString()
	if err := db.UpdateVideoInfo(s.ctx, req.VideoId, video.Title, video.Description, video.UpdatedAt); err != nil {
		return nil, err
	}

	if req.ThumbnailPath != "" {
		oldObject := video.CoverObject
		coverUrl, coverObject, err := oss.UploadImage(s.ctx, req.ThumbnailPath, req.VideoId)
		if err != nil {
			return nil, err
		}
		if err := db.UpdateVideoThumbnail(s.ctx, req.VideoId, coverUrl, coverObject, video.UpdatedAt); err != nil {
			s.cleanupObjects("", coverObject)
			return nil, err
		}
		video.CoverUrl = coverUrl
		video.CoverObject = coverObject
		if oldObject != "" && oldObject != coverObject {
			if err := oss.RemoveImage(s.ctx, oldObject); err != nil {
				hlog.CtxWarnf(s.ctx, "failed to delete replaced thumbnail %s: %v", oldObject, err)
			}
		}
	}
	return video, nil
}

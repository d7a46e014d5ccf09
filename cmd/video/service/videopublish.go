package service

import (
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/utils"
)

// PublishVideoRequest carries the already-saved temp file paths; multipart
// plumbing stays in the handler.
type PublishVideoRequest struct {
	UserId        int64
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// PublishVideo stores both media assets and creates the document. If the
// insert fails the freshly stored objects are removed so the media store
// holds no orphans.
func (s *VideoService) PublishVideo(req *PublishVideoRequest) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, errno.RequestErr.WithMessage("Title and description are required")
	}
	if req.VideoPath == "" {
		return nil, errno.RequestErr.WithMessage("Video file is required")
	}
	if req.ThumbnailPath == "" {
		return nil, errno.RequestErr.WithMessage("Thumbnail file is required")
	}

	duration, err := utils.GetVideoDuration(req.VideoPath)
	if err != nil {
		return nil, errno.RequestErr.WithMessage("Unreadable video file")
	}

	vid := utils.GenerateID()
	videoUrl, videoObject, err := oss.UploadVideo(s.ctx, req.VideoPath, vid)
	if err != nil {
		return nil, err
	}
	coverUrl, coverObject, err := oss.UploadImage(s.ctx, req.ThumbnailPath, vid)
	if err != nil {
		s.cleanupObjects(videoObject, "")
		return nil, err
	}

	now := utils.NowString()
	video := &model.Video{
		VideoId:     vid,
		UserId:      req.UserId,
		Title:       req.Title,
		Description: req.Description,
		VideoUrl:    videoUrl,
		VideoObject: videoObject,
		CoverUrl:    coverUrl,
		CoverObject: coverObject,
		Duration:    duration,
		Views:       0,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.InsertVideo(s.ctx, video); err != nil {
		s.cleanupObjects(videoObject, coverObject)
		return nil, err
	}
	return video, nil
}

func (s *VideoService) cleanupObjects(videoObject, coverObject string) {
	if videoObject != "" {
		if err := oss.RemoveVideo(s.ctx, videoObject); err != nil {
			hlog.CtxWarnf(s.ctx, "failed to clean up video object %s: %v", videoObject, err)
		}
	}
	if coverObject != "" {
		if err := oss.RemoveImage(s.ctx, coverObject); err != nil {
			hlog.CtxWarnf(s.ctx, "failed to clean up cover object %s: %v", coverObject, err)
		}
	}
}

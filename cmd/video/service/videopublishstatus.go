package service

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

// TogglePublishStatus flips the published flag and returns the new state.
func (s *VideoService) TogglePublishStatus(videoId, userId int64) (bool, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errno.NotFoundErr.WithMessage("Video not found")
		}
		return false, err
	}
	if err := utils.RequireOwner(userId, video.UserId, "video"); err != nil {
		return false, err
	}

	newState := !video.IsPublished
	if err := db.UpdateVideoPublishStatus(s.ctx, videoId, newState); err != nil {
		return false, err
	}
	return newState, nil
}

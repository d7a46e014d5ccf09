package service

import (
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	playlistdb "vidtube.com/cmd/playlist/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/utils"
)

// DeleteVideo hard-deletes the document, its dependent relation rows
// (likes, comments and their likes, playlist memberships, watch history) and
// finally the stored media objects. Media failures are logged, not
// propagated: the document delete already happened and must win.
func (s *VideoService) DeleteVideo(videoId, userId int64) error {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("Video not found")
		}
		return err
	}
	if err := utils.RequireOwner(userId, video.UserId, "video"); err != nil {
		return err
	}

	if err := db.DeleteVideo(s.ctx, videoId); err != nil {
		return err
	}

	if err := interactiondb.DeleteLikesOfTarget(s.ctx, model.LikeTargetVideo, videoId); err != nil {
		return err
	}
	commentIds, err := interactiondb.GetVideoCommentIds(s.ctx, videoId)
	if err != nil {
		return err
	}
	if err := interactiondb.DeleteLikesOfTargets(s.ctx, model.LikeTargetComment, commentIds); err != nil {
		return err
	}
	if err := interactiondb.DeleteCommentsOfVideo(s.ctx, videoId); err != nil {
		return err
	}
	if err := playlistdb.RemoveVideoFromAllPlaylists(s.ctx, videoId); err != nil {
		return err
	}
	if err := userdb.RemoveWatchHistoryOfVideo(s.ctx, videoId); err != nil {
		return err
	}

	if err := oss.RemoveVideo(s.ctx, video.VideoObject); err != nil {
		hlog.CtxWarnf(s.ctx, "failed to delete video object %s: %v", video.VideoObject, err)
	}
	if err := oss.RemoveImage(s.ctx, video.CoverObject); err != nil {
		hlog.CtxWarnf(s.ctx, "failed to delete cover object %s: %v", video.CoverObject, err)
	}
	return nil
}

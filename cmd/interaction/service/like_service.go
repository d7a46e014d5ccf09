package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	tweetdb "vidtube.com/cmd/tweet/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

func (s *LikeService) ToggleVideoLike(videoId, userId int64) (bool, error) {
	if _, err := videodb.GetVideo(s.ctx, videoId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errno.NotFoundErr.WithMessage("Video not found")
		}
		return false, err
	}
	return s.toggle(userId, model.LikeTargetVideo, videoId)
}

func (s *LikeService) ToggleCommentLike(commentId, userId int64) (bool, error) {
	if _, err := db.GetCommentInfo(s.ctx, commentId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errno.NotFoundErr.WithMessage("Comment not found")
		}
		return false, err
	}
	return s.toggle(userId, model.LikeTargetComment, commentId)
}

func (s *LikeService) ToggleTweetLike(tweetId, userId int64) (bool, error) {
	if _, err := tweetdb.GetTweet(s.ctx, tweetId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errno.NotFoundErr.WithMessage("Tweet not found")
		}
		return false, err
	}
	return s.toggle(userId, model.LikeTargetTweet, tweetId)
}

// toggle is write-first: it attempts the insert and lets the unique index on
// (user, kind, target) decide the branch, so there is no window between an
// existence check and the write.
func (s *LikeService) toggle(userId int64, targetKind string, targetId int64) (bool, error) {
	like := &model.Like{
		LikeId:     utils.GenerateID(),
		UserId:     userId,
		TargetKind: targetKind,
		TargetId:   targetId,
		CreatedAt:  utils.NowString(),
	}
	err := db.CreateLike(s.ctx, like)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, err
	}
	if _, err := db.DeleteLike(s.ctx, userId, targetKind, targetId); err != nil {
		return false, err
	}
	return false, nil
}

// GetLikedVideos resolves the viewer's liked video ids into full documents,
// preserving most-recently-liked-first order.
func (s *LikeService) GetLikedVideos(userId int64) ([]*model.Video, error) {
	videoIds, err := db.GetLikedVideoIds(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	videos, err := videodb.GetVideosByIds(s.ctx, videoIds)
	if err != nil {
		return nil, err
	}

	byId := make(map[int64]*model.Video, len(videos))
	for _, video := range videos {
		byId[video.VideoId] = video
	}
	ordered := make([]*model.Video, 0, len(videos))
	for _, id := range videoIds {
		if video, ok := byId[id]; ok {
			ordered = append(ordered, video)
		}
	}
	return ordered, nil
}

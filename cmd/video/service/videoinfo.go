package service

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	relationdb "vidtube.com/cmd/relation/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
)

// GetVideoById composes the enriched video view for a viewer. Fetching is
// not a pure read: the view counter goes up by one per call and the video is
// added to the viewer's watch history (set semantics).
func (s *VideoService) GetVideoById(videoId, viewerId int64) (*VideoDetail, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, err
	}

	if err := db.IncrementVideoViews(s.ctx, videoId); err != nil {
		return nil, err
	}
	video.Views++
	if err := userdb.AddWatchHistory(s.ctx, viewerId, videoId); err != nil {
		return nil, err
	}

	likesCount, err := interactiondb.GetLikeCount(s.ctx, model.LikeTargetVideo, videoId)
	if err != nil {
		return nil, err
	}
	isLiked, err := interactiondb.HasLiked(s.ctx, viewerId, model.LikeTargetVideo, videoId)
	if err != nil {
		return nil, err
	}

	detail := &VideoDetail{
		Video:      video,
		LikesCount: likesCount,
		IsLiked:    isLiked,
	}

	owner, err := userdb.GetUserById(s.ctx, video.UserId)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return detail, nil
	}
	subscriberCount, err := relationdb.GetSubscriberCount(s.ctx, owner.UserId)
	if err != nil {
		return nil, err
	}
	isSubscribed, err := relationdb.IsSubscribed(s.ctx, viewerId, owner.UserId)
	if err != nil {
		return nil, err
	}
	detail.Owner = &VideoOwner{
		UserId:          owner.UserId,
		Username:        owner.Username,
		AvatarUrl:       owner.AvatarUrl,
		SubscriberCount: subscriberCount,
		IsSubscribed:    isSubscribed,
	}
	return detail, nil
}

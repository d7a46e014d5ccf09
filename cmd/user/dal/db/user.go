package db

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/utils"
)

func GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	users := make([]*model.User, 0, len(userIds))
	if len(userIds) == 0 {
		return users, nil
	}
	if err := DB.WithContext(ctx).Where("user_id IN (?)", userIds).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AddWatchHistory appends a video to the viewer's watch history with set
// semantics: the unique index absorbs repeat watches.
func AddWatchHistory(ctx context.Context, userId, videoId int64) error {
	entry := &model.UserVideoWatchHistory{
		UserVideoWatchHistoryId: utils.GenerateID(),
		UserId:                  userId,
		VideoId:                 videoId,
		WatchTime:               utils.NowString(),
	}
	if err := DB.WithContext(ctx).Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			hlog.CtxDebugf(ctx, "watch history entry already present: user=%d video=%d", userId, videoId)
			return nil
		}
		return err
	}
	return nil
}

func GetWatchHistoryVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.UserVideoWatchHistory{}).
		Where("user_id = ?", userId).
		Order("watch_time DESC, user_video_watch_history_id DESC").
		Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func RemoveWatchHistoryOfVideo(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).
		Delete(&model.UserVideoWatchHistory{}).Error
}

package db

import (
	"context"

	"vidtube.com/cmd/model"
)

func CreateLike(ctx context.Context, like *model.Like) error {
	return DB.WithContext(ctx).Create(like).Error
}

// DeleteLike removes the (user, kind, target) like and reports whether a row
// actually existed.
func DeleteLike(ctx context.Context, userId int64, targetKind string, targetId int64) (bool, error) {
	result := DB.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userId, targetKind, targetId).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func GetLikeCount(ctx context.Context, targetKind string, targetId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_kind = ? AND target_id = ?", targetKind, targetId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func HasLiked(ctx context.Context, userId int64, targetKind string, targetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userId, targetKind, targetId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetLikedVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_kind = ?", userId, model.LikeTargetVideo).
		Order("created_at DESC, like_id DESC").
		Select("target_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func DeleteLikesOfTarget(ctx context.Context, targetKind string, targetId int64) error {
	return DB.WithContext(ctx).
		Where("target_kind = ? AND target_id = ?", targetKind, targetId).
		Delete(&model.Like{}).Error
}

func DeleteLikesOfTargets(ctx context.Context, targetKind string, targetIds []int64) error {
	if len(targetIds) == 0 {
		return nil
	}
	return DB.WithContext(ctx).
		Where("target_kind = ? AND target_id IN (?)", targetKind, targetIds).
		Delete(&model.Like{}).Error
}

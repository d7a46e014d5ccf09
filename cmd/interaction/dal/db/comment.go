package db

import (
	"context"

	"vidtube.com/cmd/model"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetVideoCommentListByPart pages through a video's comments, newest first.
func GetVideoCommentListByPart(ctx context.Context, videoId, pageNum, pageSize int64) ([]*model.Comment, int64, error) {
	var count int64
	tx := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId)
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	comments := make([]*model.Comment, 0, pageSize)
	if err := tx.Order("created_at DESC, comment_id DESC").
		Limit(int(pageSize)).
		Offset(int(pageNum-1) * int(pageSize)).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, count, nil
}

func GetVideoCommentIds(ctx context.Context, videoId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).
		Select("comment_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": updatedAt,
		}).Error
}

func DeleteComment(ctx context.Context, commentId int64) error {
	return DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error
}

func DeleteCommentsOfVideo(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Comment{}).Error
}

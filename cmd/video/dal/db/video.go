package db

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

// VideoFilter is the typed filter behind the paginated listing endpoint.
// Query matches title or description case-insensitively, UserId narrows to an
// owner, SortBy/SortType pick one of the whitelisted sort columns.
type VideoFilter struct {
	Query    string
	UserId   int64
	SortBy   string
	SortType string
	Page     int64
	Limit    int64
}

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"views":     "views",
	"duration":  "duration",
	"title":     "title",
}

func (f *VideoFilter) normalize() {
	if f.Page < 1 {
		f.Page = constants.DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = constants.DefaultLimit
	}
	if f.Limit > constants.MaxLimit {
		f.Limit = constants.MaxLimit
	}
}

func (f *VideoFilter) orderClause() string {
	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(f.SortType, "asc") {
		direction = "ASC"
	}
	return column + " " + direction
}

func QueryVideos(ctx context.Context, filter *VideoFilter) ([]*model.Video, int64, error) {
	filter.normalize()

	tx := DB.WithContext(ctx).Model(&model.Video{})
	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.UserId > 0 {
		tx = tx.Where("user_id = ?", filter.UserId)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryVideos count failed")
	}

	var videos []*model.Video
	if err := tx.Order(filter.orderClause()).
		Limit(int(filter.Limit)).
		Offset(int((filter.Page - 1) * filter.Limit)).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryVideos failed")
	}
	return videos, count, nil
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	return DB.WithContext(ctx).Create(video).Error
}

func GetVideo(ctx context.Context, vid int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Where("video_id = ?", vid).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func GetVideosByIds(ctx context.Context, vids []int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, len(vids))
	if len(vids) == 0 {
		return videos, nil
	}
	if err := DB.WithContext(ctx).Where("video_id IN (?)", vids).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func GetPublishedVideosByIds(ctx context.Context, vids []int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, len(vids))
	if len(vids) == 0 {
		return videos, nil
	}
	if err := DB.WithContext(ctx).
		Where("video_id IN (?) AND is_published = ?", vids, true).
		Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// GetLatestVideoByUser returns the channel's most recently created video, or
// nil when the channel has none.
func GetLatestVideoByUser(ctx context.Context, userId int64) (*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC, video_id DESC").
		Limit(1).
		Find(&videos).Error; err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, nil
	}
	return videos[0], nil
}

func UpdateVideoInfo(ctx context.Context, vid int64, title, description, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", vid).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
			"updated_at":  updatedAt,
		}).Error
}

func UpdateVideoThumbnail(ctx context.Context, vid int64, coverUrl, coverObject, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", vid).
		Updates(map[string]interface{}{
			"cover_url":    coverUrl,
			"cover_object": coverObject,
			"updated_at":   updatedAt,
		}).Error
}

func UpdateVideoPublishStatus(ctx context.Context, vid int64, isPublished bool) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", vid).
		Update("is_published", isPublished).Error
}

// IncrementVideoViews bumps the counter in a single statement so concurrent
// fetches never lose an increment.
func IncrementVideoViews(ctx context.Context, vid int64) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", vid).
		Update("views", gorm.Expr("views + 1")).Error
}

func DeleteVideo(ctx context.Context, vid int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", vid).Delete(&model.Video{}).Error
}

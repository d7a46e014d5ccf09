package db

import (
	"context"

	"vidtube.com/cmd/model"
)

func CreateSubscription(ctx context.Context, subscription *model.Subscription) error {
	return DB.WithContext(ctx).Create(subscription).Error
}

// DeleteSubscription removes the (subscriber, channel) row and reports
// whether one existed.
func DeleteSubscription(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	result := DB.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func GetSubscriberCount(ctx context.Context, channelId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetSubscriberIds(ctx context.Context, channelId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).
		Select("subscriber_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func GetSubscribedChannelIds(ctx context.Context, subscriberId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).
		Select("channel_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

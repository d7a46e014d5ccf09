package db

import (
	"context"

	"vidtube.com/cmd/model"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return DB.WithContext(ctx).Create(tweet).Error
}

func GetTweet(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).First(&tweet).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

func GetTweetsByUser(ctx context.Context, userId int64) ([]*model.Tweet, error) {
	tweets := make([]*model.Tweet, 0)
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).
		Order("created_at DESC, tweet_id DESC").
		Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

func UpdateTweetContent(ctx context.Context, tweetId int64, content, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": updatedAt,
		}).Error
}

func DeleteTweet(ctx context.Context, tweetId int64) error {
	return DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error
}

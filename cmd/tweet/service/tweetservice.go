package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/cmd/tweet/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (s *TweetService) CreateTweet(userId int64, content string) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.RequestErr.WithMessage("Tweet content must not be empty")
	}

	now := utils.NowString()
	tweet := &model.Tweet{
		TweetId:   utils.GenerateID(),
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateTweet(s.ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *TweetService) GetUserTweets(userId int64) ([]*model.Tweet, error) {
	return db.GetTweetsByUser(s.ctx, userId)
}

func (s *TweetService) UpdateTweet(tweetId, userId int64, content string) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.RequestErr.WithMessage("Tweet content must not be empty")
	}
	tweet, err := db.GetTweet(s.ctx, tweetId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Tweet not found")
		}
		return nil, err
	}
	if err := utils.RequireOwner(userId, tweet.UserId, "tweet"); err != nil {
		return nil, err
	}

	tweet.Content = content
	tweet.UpdatedAt = utils.NowString()
	if err := db.UpdateTweetContent(s.ctx, tweetId, tweet.Content, tweet.UpdatedAt); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *TweetService) DeleteTweet(tweetId, userId int64) error {
	tweet, err := db.GetTweet(s.ctx, tweetId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("Tweet not found")
		}
		return err
	}
	if err := utils.RequireOwner(userId, tweet.UserId, "tweet"); err != nil {
		return err
	}

	if err := db.DeleteTweet(s.ctx, tweetId); err != nil {
		return err
	}
	return interactiondb.DeleteLikesOfTarget(s.ctx, model.LikeTargetTweet, tweetId)
}

package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	tweetdb "vidtube.com/cmd/tweet/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/utils"
)

// newTestEnv wires every dal package the interaction services reach into a
// single in-memory database.
func newTestEnv(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Tweet{},
	))
	interactiondb.DB = gdb
	videodb.DB = gdb
	tweetdb.DB = gdb
}

func seedVideo(t *testing.T, userId int64, published bool) *model.Video {
	t.Helper()
	now := utils.NowString()
	video := &model.Video{
		VideoId:     utils.GenerateID(),
		UserId:      userId,
		Title:       "title",
		Description: "description",
		IsPublished: published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, videodb.InsertVideo(context.Background(), video))
	return video
}

func seedTweet(t *testing.T, userId int64) *model.Tweet {
	t.Helper()
	now := utils.NowString()
	tweet := &model.Tweet{
		TweetId:   utils.GenerateID(),
		UserId:    userId,
		Content:   "hello",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, tweetdb.CreateTweet(context.Background(), tweet))
	return tweet
}

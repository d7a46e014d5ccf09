package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	relationdb "vidtube.com/cmd/relation/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

func newTestEnv(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(
		&model.User{},
		&model.Subscription{},
		&model.Video{},
	))
	relationdb.DB = gdb
	userdb.DB = gdb
	videodb.DB = gdb
}

func seedUser(t *testing.T, username string) *model.User {
	t.Helper()
	now := utils.NowString()
	user := &model.User{
		UserId:    utils.GenerateID(),
		Username:  username,
		FullName:  "User " + username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, userdb.DB.Create(user).Error)
	return user
}

func seedVideo(t *testing.T, userId int64, title, createdAt string) *model.Video {
	t.Helper()
	video := &model.Video{
		VideoId:     utils.GenerateID(),
		UserId:      userId,
		Title:       title,
		IsPublished: true,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, videodb.InsertVideo(context.Background(), video))
	return video
}

func TestToggleSubscription(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	subscriber := seedUser(t, "alice")
	channel := seedUser(t, "bob")
	svc := NewRelationService(ctx)

	subscribed, err := svc.ToggleSubscription(subscriber.UserId, channel.UserId)
	require.NoError(t, err)
	assert.True(t, subscribed)

	count, err := relationdb.GetSubscriberCount(ctx, channel.UserId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	subscribed, err = svc.ToggleSubscription(subscriber.UserId, channel.UserId)
	require.NoError(t, err)
	assert.False(t, subscribed)

	count, err = relationdb.GetSubscriberCount(ctx, channel.UserId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestToggleSubscriptionSelf(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	user := seedUser(t, "alice")

	_, err := NewRelationService(ctx).ToggleSubscription(user.UserId, user.UserId)
	require.Error(t, err)
	assert.Equal(t, int64(errno.BadRequestCode), errno.ConvertErr(err).ErrCode)
}

func TestToggleSubscriptionMissingChannel(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	subscriber := seedUser(t, "alice")

	_, err := NewRelationService(ctx).ToggleSubscription(subscriber.UserId, 999)
	require.Error(t, err)
	assert.Equal(t, int64(errno.NotFoundCode), errno.ConvertErr(err).ErrCode)
}

func TestGetChannelSubscribers(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	channel := seedUser(t, "channel")
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	svc := NewRelationService(ctx)

	for _, u := range []*model.User{alice, bob} {
		subscribed, err := svc.ToggleSubscription(u.UserId, channel.UserId)
		require.NoError(t, err)
		require.True(t, subscribed)
	}

	subscribers, total, err := svc.GetChannelSubscribers(channel.UserId)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	names := make([]string, 0, len(subscribers))
	for _, s := range subscribers {
		names = append(names, s.Username)
	}
	assert.ElementsMatch(t, []string{"alice", "bob"}, names)
}

func TestGetChannelSubscribersMissingChannel(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()

	_, _, err := NewRelationService(ctx).GetChannelSubscribers(999)
	require.Error(t, err)
	assert.Equal(t, int64(errno.NotFoundCode), errno.ConvertErr(err).ErrCode)
}

func TestGetSubscribedChannels(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	subscriber := seedUser(t, "alice")
	channel := seedUser(t, "channel")
	empty := seedUser(t, "quiet")
	svc := NewRelationService(ctx)

	seedVideo(t, channel.UserId, "old", "2026-01-01 10:00:00")
	latest := seedVideo(t, channel.UserId, "new", "2026-02-01 10:00:00")

	for _, ch := range []*model.User{channel, empty} {
		subscribed, err := svc.ToggleSubscription(subscriber.UserId, ch.UserId)
		require.NoError(t, err)
		require.True(t, subscribed)
	}

	channels, total, err := svc.GetSubscribedChannels(subscriber.UserId)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, channels, 2)

	byName := make(map[string]*ChannelInfo, len(channels))
	for _, ch := range channels {
		byName[ch.Username] = ch
	}
	require.NotNil(t, byName["channel"].LatestVideo)
	assert.Equal(t, latest.VideoId, byName["channel"].LatestVideo.VideoId)
	assert.Nil(t, byName["quiet"].LatestVideo)
}

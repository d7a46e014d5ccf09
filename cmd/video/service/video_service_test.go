package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	playlistdb "vidtube.com/cmd/playlist/dal/db"
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
		&model.UserVideoWatchHistory{},
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Playlist{},
		&model.PlaylistVideo{},
		&model.Subscription{},
	))
	videodb.DB = gdb
	userdb.DB = gdb
	interactiondb.DB = gdb
	relationdb.DB = gdb
	playlistdb.DB = gdb
}

func seedUser(t *testing.T, username string) *model.User {
	t.Helper()
	now := utils.NowString()
	user := &model.User{
		UserId:    utils.GenerateID(),
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, userdb.DB.Create(user).Error)
	return user
}

func seedVideo(t *testing.T, userId int64) *model.Video {
	t.Helper()
	now := utils.NowString()
	video := &model.Video{
		VideoId:     utils.GenerateID(),
		UserId:      userId,
		Title:       "title",
		Description: "description",
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, videodb.InsertVideo(context.Background(), video))
	return video
}

func TestGetVideoByIdSideEffects(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	owner := seedUser(t, "owner")
	video := seedVideo(t, owner.UserId)
	viewer := seedUser(t, "viewer")
	svc := NewVideoService(ctx)

	detail, err := svc.GetVideoById(video.VideoId, viewer.UserId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Views)
	assert.False(t, detail.IsLiked)
	assert.Equal(t, int64(0), detail.LikesCount)

	// every fetch counts a view, watch history keeps set semantics
	detail, err = svc.GetVideoById(video.VideoId, viewer.UserId)
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.Views)

	historyIds, err := userdb.GetWatchHistoryVideoIds(ctx, viewer.UserId)
	require.NoError(t, err)
	assert.Equal(t, []int64{video.VideoId}, historyIds)
}

func TestGetVideoByIdOwnerEnrichment(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	owner := seedUser(t, "owner")
	video := seedVideo(t, owner.UserId)
	viewer := seedUser(t, "viewer")
	svc := NewVideoService(ctx)

	sub := &model.Subscription{
		SubscriptionId: utils.GenerateID(),
		SubscriberId:   viewer.UserId,
		ChannelId:      owner.UserId,
		CreatedAt:      utils.NowString(),
	}
	require.NoError(t, relationdb.CreateSubscription(ctx, sub))

	like := &model.Like{
		LikeId:     utils.GenerateID(),
		UserId:     viewer.UserId,
		TargetKind: model.LikeTargetVideo,
		TargetId:   video.VideoId,
		CreatedAt:  utils.NowString(),
	}
	require.NoError(t, interactiondb.CreateLike(ctx, like))

	detail, err := svc.GetVideoById(video.VideoId, viewer.UserId)
	require.NoError(t, err)
	assert.True(t, detail.IsLiked)
	assert.Equal(t, int64(1), detail.LikesCount)
	require.NotNil(t, detail.Owner)
	assert.Equal(t, "owner", detail.Owner.Username)
	assert.Equal(t, int64(1), detail.Owner.SubscriberCount)
	assert.True(t, detail.Owner.IsSubscribed)
}

func TestGetVideoByIdMissingOwnerTolerated(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	video := seedVideo(t, 424242) // no such user row
	viewer := seedUser(t, "viewer")

	detail, err := NewVideoService(ctx).GetVideoById(video.VideoId, viewer.UserId)
	require.NoError(t, err)
	assert.Nil(t, detail.Owner)
}

func TestGetVideoByIdNotFound(t *testing.T) {
	newTestEnv(t)
	_, err := NewVideoService(context.Background()).GetVideoById(999, 1)
	assert.Equal(t, int64(errno.NotFoundCode), errno.ConvertErr(err).ErrCode)
}

func TestTogglePublishStatus(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	owner := seedUser(t, "owner")
	video := seedVideo(t, owner.UserId)
	svc := NewVideoService(ctx)

	_, err := svc.TogglePublishStatus(video.VideoId, owner.UserId+1)
	assert.Equal(t, int64(errno.ForbiddenCode), errno.ConvertErr(err).ErrCode)

	state, err := svc.TogglePublishStatus(video.VideoId, owner.UserId)
	require.NoError(t, err)
	assert.False(t, state)

	state, err = svc.TogglePublishStatus(video.VideoId, owner.UserId)
	require.NoError(t, err)
	assert.True(t, state)
}

func TestUpdateVideoMetadata(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	owner := seedUser(t, "owner")
	video := seedVideo(t, owner.UserId)
	svc := NewVideoService(ctx)

	_, err := svc.UpdateVideo(&UpdateVideoRequest{
		VideoId: video.VideoId, UserId: owner.UserId, Title: " ", Description: "d",
	})
	assert.Equal(t, int64(errno.BadRequestCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.UpdateVideo(&UpdateVideoRequest{
		VideoId: video.VideoId, UserId: owner.UserId + 1, Title: "t", Description: "d",
	})
	assert.Equal(t, int64(errno.ForbiddenCode), errno.ConvertErr(err).ErrCode)

	updated, err := svc.UpdateVideo(&UpdateVideoRequest{
		VideoId: video.VideoId, UserId: owner.UserId, Title: "new title", Description: "new description",
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)

	got, err := videodb.GetVideo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "new description", got.Description)
}

func TestDeleteVideoCascade(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	owner := seedUser(t, "owner")
	viewer := seedUser(t, "viewer")
	video := seedVideo(t, owner.UserId)
	svc := NewVideoService(ctx)

	// a comment carrying its own like
	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   video.VideoId,
		UserId:    viewer.UserId,
		Content:   "bye",
		CreatedAt: utils.NowString(),
		UpdatedAt: utils.NowString(),
	}
	require.NoError(t, interactiondb.CreateComment(ctx, comment))
	for _, l := range []*model.Like{
		{LikeId: utils.GenerateID(), UserId: viewer.UserId, TargetKind: model.LikeTargetVideo, TargetId: video.VideoId, CreatedAt: utils.NowString()},
		{LikeId: utils.GenerateID(), UserId: viewer.UserId, TargetKind: model.LikeTargetComment, TargetId: comment.CommentId, CreatedAt: utils.NowString()},
	} {
		require.NoError(t, interactiondb.CreateLike(ctx, l))
	}
	playlist := &model.Playlist{
		PlaylistId: utils.GenerateID(), UserId: viewer.UserId,
		Name: "mix", Description: "assorted",
		CreatedAt: utils.NowString(), UpdatedAt: utils.NowString(),
	}
	require.NoError(t, playlistdb.CreatePlaylist(ctx, playlist))
	require.NoError(t, playlistdb.AddPlaylistVideo(ctx, &model.PlaylistVideo{
		PlaylistVideoId: utils.GenerateID(), PlaylistId: playlist.PlaylistId,
		VideoId: video.VideoId, CreatedAt: utils.NowString(),
	}))
	require.NoError(t, userdb.AddWatchHistory(ctx, viewer.UserId, video.VideoId))

	err := svc.DeleteVideo(video.VideoId, viewer.UserId)
	assert.Equal(t, int64(errno.ForbiddenCode), errno.ConvertErr(err).ErrCode)

	require.NoError(t, svc.DeleteVideo(video.VideoId, owner.UserId))

	_, err = videodb.GetVideo(ctx, video.VideoId)
	assert.Error(t, err)

	videoLikes, err := interactiondb.GetLikeCount(ctx, model.LikeTargetVideo, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), videoLikes)
	commentLikes, err := interactiondb.GetLikeCount(ctx, model.LikeTargetComment, comment.CommentId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), commentLikes)

	commentIds, err := interactiondb.GetVideoCommentIds(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Empty(t, commentIds)

	memberIds, err := playlistdb.GetPlaylistVideoIds(ctx, playlist.PlaylistId)
	require.NoError(t, err)
	assert.Empty(t, memberIds)

	historyIds, err := userdb.GetWatchHistoryVideoIds(ctx, viewer.UserId)
	require.NoError(t, err)
	assert.Empty(t, historyIds)
}

func TestPublishVideoValidation(t *testing.T) {
	newTestEnv(t)
	svc := NewVideoService(context.Background())

	_, err := svc.PublishVideo(&PublishVideoRequest{
		UserId: 1, Title: "", Description: "d", VideoPath: "/tmp/a.mp4", ThumbnailPath: "/tmp/a.jpg",
	})
	assert.Equal(t, int64(errno.BadRequestCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.PublishVideo(&PublishVideoRequest{
		UserId: 1, Title: "t", Description: "d", ThumbnailPath: "/tmp/a.jpg",
	})
	assert.Equal(t, int64(errno.BadRequestCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.PublishVideo(&PublishVideoRequest{
		UserId: 1, Title: "t", Description: "d", VideoPath: "/tmp/a.mp4",
	})
	assert.Equal(t, int64(errno.BadRequestCode), errno.ConvertErr(err).ErrCode)
}

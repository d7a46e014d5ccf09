package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
)

func TestToggleVideoLike(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	video := seedVideo(t, 1, true)
	svc := NewLikeService(ctx)

	liked, err := svc.ToggleVideoLike(video.VideoId, 2)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := interactiondb.GetLikeCount(ctx, model.LikeTargetVideo, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	liked, err = svc.ToggleVideoLike(video.VideoId, 2)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = interactiondb.GetLikeCount(ctx, model.LikeTargetVideo, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// third toggle likes again, never a second row
	liked, err = svc.ToggleVideoLike(video.VideoId, 2)
	require.NoError(t, err)
	assert.True(t, liked)
	count, err = interactiondb.GetLikeCount(ctx, model.LikeTargetVideo, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestToggleLikeMissingTargets(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	svc := NewLikeService(ctx)

	_, err := svc.ToggleVideoLike(999, 2)
	assert.Equal(t, int64(errno.NotFoundCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.ToggleCommentLike(999, 2)
	assert.Equal(t, int64(errno.NotFoundCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.ToggleTweetLike(999, 2)
	assert.Equal(t, int64(errno.NotFoundCode), errno.ConvertErr(err).ErrCode)
}

func TestToggleLikeKindsDoNotCollide(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	video := seedVideo(t, 1, true)
	tweet := seedTweet(t, 1)
	// a tweet and a video sharing no ids, same liker
	svc := NewLikeService(ctx)

	liked, err := svc.ToggleVideoLike(video.VideoId, 2)
	require.NoError(t, err)
	assert.True(t, liked)
	liked, err = svc.ToggleTweetLike(tweet.TweetId, 2)
	require.NoError(t, err)
	assert.True(t, liked)

	videoCount, err := interactiondb.GetLikeCount(ctx, model.LikeTargetVideo, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), videoCount)
	tweetCount, err := interactiondb.GetLikeCount(ctx, model.LikeTargetTweet, tweet.TweetId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tweetCount)
}

func TestGetLikedVideosOrder(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	svc := NewLikeService(ctx)

	first := seedVideo(t, 1, true)
	second := seedVideo(t, 1, true)
	third := seedVideo(t, 1, true)

	for _, v := range []*model.Video{first, second, third} {
		liked, err := svc.ToggleVideoLike(v.VideoId, 2)
		require.NoError(t, err)
		require.True(t, liked)
	}
	// unlike the middle one
	_, err := svc.ToggleVideoLike(second.VideoId, 2)
	require.NoError(t, err)

	videos, err := svc.GetLikedVideos(2)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	// most recently liked first
	assert.Equal(t, third.VideoId, videos[0].VideoId)
	assert.Equal(t, first.VideoId, videos[1].VideoId)
}

func TestGetLikedVideosEmpty(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()

	videos, err := NewLikeService(ctx).GetLikedVideos(2)
	require.NoError(t, err)
	assert.Empty(t, videos)
}

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
)

func TestCreateCommentRoundTrip(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	video := seedVideo(t, 1, true)

	comment, err := NewCommentService(ctx).CreateComment(video.VideoId, 2, "nice video")
	require.NoError(t, err)
	assert.Equal(t, video.VideoId, comment.VideoId)
	assert.Equal(t, int64(2), comment.UserId)
	assert.Equal(t, "nice video", comment.Content)

	got, err := interactiondb.GetCommentInfo(ctx, comment.CommentId)
	require.NoError(t, err)
	assert.Equal(t, comment.Content, got.Content)
}

func TestCreateCommentBlankContent(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	video := seedVideo(t, 1, true)

	_, err := NewCommentService(ctx).CreateComment(video.VideoId, 2, "   ")
	require.Error(t, err)
	assert.Equal(t, int64(errno.BadRequestCode), errno.ConvertErr(err).ErrCode)
}

func TestCreateCommentMissingVideo(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()

	_, err := NewCommentService(ctx).CreateComment(999, 2, "hello")
	require.Error(t, err)
	assert.Equal(t, int64(errno.NotFoundCode), errno.ConvertErr(err).ErrCode)
}

func TestListCommentsNewestFirstPaged(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	video := seedVideo(t, 1, true)
	svc := NewCommentService(ctx)

	for i := 0; i < 5; i++ {
		_, err := svc.CreateComment(video.VideoId, 2, fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
	}

	comments, total, err := svc.ListComments(video.VideoId, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, comments, 3)
	assert.Equal(t, "comment 4", comments[0].Content)

	comments, total, err = svc.ListComments(video.VideoId, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, comments, 2)
	assert.Equal(t, "comment 0", comments[1].Content)
}

func TestListCommentsMissingVideo(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()

	_, _, err := NewCommentService(ctx).ListComments(999, 1, 10)
	require.Error(t, err)
	assert.Equal(t, int64(errno.NotFoundCode), errno.ConvertErr(err).ErrCode)
}

func TestUpdateCommentOwnership(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	video := seedVideo(t, 1, true)
	svc := NewCommentService(ctx)

	comment, err := svc.CreateComment(video.VideoId, 2, "original")
	require.NoError(t, err)

	_, err = svc.UpdateComment(comment.CommentId, 3, "hijacked")
	require.Error(t, err)
	assert.Equal(t, int64(errno.ForbiddenCode), errno.ConvertErr(err).ErrCode)

	got, err := interactiondb.GetCommentInfo(ctx, comment.CommentId)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Content)

	updated, err := svc.UpdateComment(comment.CommentId, 2, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}

func TestDeleteCommentRemovesLikes(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()
	video := seedVideo(t, 1, true)

	comment, err := NewCommentService(ctx).CreateComment(video.VideoId, 2, "soon gone")
	require.NoError(t, err)

	liked, err := NewLikeService(ctx).ToggleCommentLike(comment.CommentId, 3)
	require.NoError(t, err)
	require.True(t, liked)

	require.NoError(t, NewCommentService(ctx).DeleteComment(comment.CommentId, 2))

	_, err = interactiondb.GetCommentInfo(ctx, comment.CommentId)
	assert.Error(t, err)

	count, err := interactiondb.GetLikeCount(ctx, model.LikeTargetComment, comment.CommentId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestDeleteCommentNotFound(t *testing.T) {
	newTestEnv(t)
	ctx := context.Background()

	err := NewCommentService(ctx).DeleteComment(999, 2)
	require.Error(t, err)
	assert.Equal(t, int64(errno.NotFoundCode), errno.ConvertErr(err).ErrCode)
}

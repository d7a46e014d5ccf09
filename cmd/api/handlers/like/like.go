package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/router/authfunc"
	"vidtube.com/cmd/interaction/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type toggleLikeResult struct {
	Liked bool `json:"liked"`
}

func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	userId, err := authfunc.CurrentUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	videoId, ok := utils.ValidateId(c.Param("videoId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid video id"), nil)
		return
	}

	liked, err := service.NewLikeService(ctx).ToggleVideoLike(videoId, userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Video like toggled successfully"), toggleLikeResult{Liked: liked})
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	userId, err := authfunc.CurrentUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	commentId, ok := utils.ValidateId(c.Param("commentId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid comment id"), nil)
		return
	}

	liked, err := service.NewLikeService(ctx).ToggleCommentLike(commentId, userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Comment like toggled successfully"), toggleLikeResult{Liked: liked})
}

func ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	userId, err := authfunc.CurrentUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	tweetId, ok := utils.ValidateId(c.Param("tweetId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid tweet id"), nil)
		return
	}

	liked, err := service.NewLikeService(ctx).ToggleTweetLike(tweetId, userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Tweet like toggled successfully"), toggleLikeResult{Liked: liked})
}

func GetLikedVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := authfunc.CurrentUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}

	videos, err := service.NewLikeService(ctx).GetLikedVideos(userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Liked videos fetched successfully"), videos)
}

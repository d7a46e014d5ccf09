package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/api/router/authfunc"
	"vidtube.com/cmd/tweet/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	userId, err := authfunc.CurrentUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param CreateTweetParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind error: %v", err)
		SendResponse(c, errno.ErrBind, nil)
		return
	}

	tweet, err := service.NewTweetService(ctx).CreateTweet(userId, param.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Tweet created successfully"), tweet)
}

func GetUserTweets(ctx context.Context, c *app.RequestContext) {
	userId, ok := utils.ValidateId(c.Param("userId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid user id"), nil)
		return
	}

	tweets, err := service.NewTweetService(ctx).GetUserTweets(userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Tweets fetched successfully"), tweets)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
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
	var param UpdateTweetParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind error: %v", err)
		SendResponse(c, errno.ErrBind, nil)
		return
	}

	tweet, err := service.NewTweetService(ctx).UpdateTweet(tweetId, userId, param.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Tweet updated successfully"), tweet)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
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

	if err := service.NewTweetService(ctx).DeleteTweet(tweetId, userId); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Tweet deleted successfully"), nil)
}

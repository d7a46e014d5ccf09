package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/api/router/authfunc"
	"vidtube.com/cmd/interaction/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type commentListResult struct {
	Comments interface{} `json:"comments"`
	Total    int64       `json:"total"`
}

func ListComments(ctx context.Context, c *app.RequestContext) {
	videoId, ok := utils.ValidateId(c.Param("videoId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid video id"), nil)
		return
	}
	var param ListCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind error: %v", err)
		SendResponse(c, errno.ErrBind, nil)
		return
	}

	comments, total, err := service.NewCommentService(ctx).ListComments(videoId, param.Page, param.Limit)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Comments fetched successfully"), commentListResult{
		Comments: comments,
		Total:    total,
	})
}

func CreateComment(ctx context.Context, c *app.RequestContext) {
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
	var param CreateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind error: %v", err)
		SendResponse(c, errno.ErrBind, nil)
		return
	}

	comment, err := service.NewCommentService(ctx).CreateComment(videoId, userId, param.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Comment added successfully"), comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
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
	var param UpdateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind error: %v", err)
		SendResponse(c, errno.ErrBind, nil)
		return
	}

	comment, err := service.NewCommentService(ctx).UpdateComment(commentId, userId, param.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Comment updated successfully"), comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
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

	if err := service.NewCommentService(ctx).DeleteComment(commentId, userId); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Comment deleted successfully"), nil)
}

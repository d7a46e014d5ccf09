package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/video/service"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type videoListResult struct {
	Videos interface{} `json:"videos"`
	Total  int64       `json:"total"`
	Page   int64       `json:"page"`
	Limit  int64       `json:"limit"`
}

func VideoList(ctx context.Context, c *app.RequestContext) {
	var param VideoListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind error: %v", err)
		SendResponse(c, errno.ErrBind, nil)
		return
	}

	req := &service.VideoListRequest{
		Query:    param.Query,
		SortBy:   param.SortBy,
		SortType: param.SortType,
		Page:     param.Page,
		Limit:    param.Limit,
	}
	if param.UserId != "" {
		userId, ok := utils.ValidateId(param.UserId)
		if !ok {
			SendResponse(c, errno.RequestErr.WithMessage("Invalid user id"), nil)
			return
		}
		req.UserId = userId
	}

	videos, total, err := service.NewVideoService(ctx).VideoList(req)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Videos fetched successfully"), videoListResult{
		Videos: videos,
		Total:  total,
		Page:   max(param.Page, constants.DefaultPage),
		Limit:  normalizeLimit(param.Limit),
	})
}

func normalizeLimit(limit int64) int64 {
	if limit < 1 {
		return constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		return constants.MaxLimit
	}
	return limit
}

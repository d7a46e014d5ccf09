package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/router/authfunc"
	"vidtube.com/cmd/relation/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type toggleSubscriptionResult struct {
	Subscribed bool `json:"subscribed"`
}

type subscriberListResult struct {
	Subscribers interface{} `json:"subscribers"`
	Total       int64       `json:"total"`
}

type channelListResult struct {
	Channels interface{} `json:"channels"`
	Total    int64       `json:"total"`
}

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	userId, err := authfunc.CurrentUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	channelId, ok := utils.ValidateId(c.Param("channelId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid channel id"), nil)
		return
	}

	subscribed, err := service.NewRelationService(ctx).ToggleSubscription(userId, channelId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Subscription toggled successfully"), toggleSubscriptionResult{Subscribed: subscribed})
}

func GetChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	channelId, ok := utils.ValidateId(c.Param("channelId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid channel id"), nil)
		return
	}

	subscribers, total, err := service.NewRelationService(ctx).GetChannelSubscribers(channelId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Subscribers fetched successfully"), subscriberListResult{
		Subscribers: subscribers,
		Total:       total,
	})
}

func GetSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	subscriberId, ok := utils.ValidateId(c.Param("subscriberId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid subscriber id"), nil)
		return
	}

	channels, total, err := service.NewRelationService(ctx).GetSubscribedChannels(subscriberId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Subscribed channels fetched successfully"), channelListResult{
		Channels: channels,
		Total:    total,
	})
}

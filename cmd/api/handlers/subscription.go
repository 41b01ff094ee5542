package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	relationservice "VideoTube.com/cmd/relation/service"
	"VideoTube.com/pkg/errno"
)

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	subscriberId, err := AuthUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	channelId, err := PathInt64(c, "channel_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	subscribed, err := relationservice.NewSubscriptionService(ctx).ToggleSubscription(channelId, subscriberId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"subscribed": subscribed})
}

func GetChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	channelId, err := PathInt64(c, "channel_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	subs, err := relationservice.NewSubscriptionService(ctx).GetChannelSubscribers(channelId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, subs)
}

func GetSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	subscriberId, err := PathInt64(c, "subscriber_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	subs, err := relationservice.NewSubscriptionService(ctx).GetSubscribedChannels(subscriberId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, subs)
}

package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	dashboardservice "VideoTube.com/cmd/dashboard/service"
	"VideoTube.com/pkg/errno"
)

func GetChannelStats(ctx context.Context, c *app.RequestContext) {
	userId, err := AuthUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	stats, err := dashboardservice.NewDashboardService(ctx).GetChannelStats(userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}

func GetChannelVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := AuthUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	videos, err := dashboardservice.NewDashboardService(ctx).GetChannelVideos(userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}

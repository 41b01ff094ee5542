package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	interactionservice "VideoTube.com/cmd/interaction/service"
	"VideoTube.com/pkg/errno"
)

func likeResult(liked bool) map[string]interface{} {
	return map[string]interface{}{"liked": liked}
}

func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	userId, err := AuthUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	videoId, err := PathInt64(c, "video_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	liked, err := interactionservice.NewLikeService(ctx).ToggleVideoLike(userId, videoId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, likeResult(liked))
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	userId, err := AuthUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	commentId, err := PathInt64(c, "comment_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	liked, err := interactionservice.NewLikeService(ctx).ToggleCommentLike(userId, commentId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, likeResult(liked))
}

func ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	userId, err := AuthUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	tweetId, err := PathInt64(c, "tweet_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	liked, err := interactionservice.NewLikeService(ctx).ToggleTweetLike(userId, tweetId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, likeResult(liked))
}

func GetLikedVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := AuthUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	videos, err := interactionservice.NewLikeService(ctx).GetLikedVideos(userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}

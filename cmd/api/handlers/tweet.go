package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	tweetservice "VideoTube.com/cmd/tweet/service"
	"VideoTube.com/pkg/errno"
)

type CreateTweetParam struct {
	Content string `json:"content" form:"content"`
}

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	userId, err := AuthUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param CreateTweetParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	if param.Content == "" {
		SendResponse(c, errno.ParamErr.WithMessage("content missing"), nil)
		return
	}

	detail, err := tweetservice.NewTweetService(ctx).CreateTweet(userId, param.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func GetUserTweets(ctx context.Context, c *app.RequestContext) {
	userId, err := PathInt64(c, "user_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	tweets, err := tweetservice.NewTweetService(ctx).GetUserTweets(userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, tweets)
}

type UpdateTweetParam struct {
	Content string `json:"content" form:"content"`
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	tweetId, err := PathInt64(c, "tweet_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param UpdateTweetParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	if param.Content == "" {
		SendResponse(c, errno.ParamErr.WithMessage("content missing"), nil)
		return
	}

	tweet, err := tweetservice.NewTweetService(ctx).UpdateTweet(tweetId, param.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, tweet)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	tweetId, err := PathInt64(c, "tweet_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err := tweetservice.NewTweetService(ctx).DeleteTweet(tweetId); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

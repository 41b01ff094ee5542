package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (s *TweetService) CreateTweet(userId int64, content string) (*model.TweetDetail, error) {
	tweet := &model.Tweet{
		TweetId: utils.NewID(),
		UserId:  userId,
		Content: content,
	}
	if err := db.CreateTweet(s.ctx, tweet); err != nil {
		return nil, err
	}
	owner, err := db.GetUserById(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	return &model.TweetDetail{Tweet: *tweet, Owner: owner.Summary()}, nil
}

func (s *TweetService) GetUserTweets(userId int64) ([]*model.TweetDetail, error) {
	owner, err := db.GetUserById(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	tweets, err := db.GetTweetsByUser(s.ctx, userId)
	if err != nil {
		return nil, err
	}

	summary := owner.Summary()
	details := make([]*model.TweetDetail, 0, len(tweets))
	for _, t := range tweets {
		details = append(details, &model.TweetDetail{Tweet: *t, Owner: summary})
	}
	return details, nil
}

func (s *TweetService) UpdateTweet(tweetId int64, content string) (*model.Tweet, error) {
	rows, err := db.UpdateTweetContent(s.ctx, tweetId, content)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		if _, err := db.GetTweetInfo(s.ctx, tweetId); err != nil {
			return nil, err
		}
	}
	return db.GetTweetInfo(s.ctx, tweetId)
}

func (s *TweetService) DeleteTweet(tweetId int64) error {
	rows, err := db.DeleteTweet(s.ctx, tweetId)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errno.RecordNotFoundErr.WithMessage("tweet not found")
	}
	return nil
}

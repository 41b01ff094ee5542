package db

import (
	"context"

	"github.com/pkg/errors"

	"VideoTube.com/cmd/model"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := DB.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.WithMessage(err, "Failed to create tweet")
	}
	return nil
}

func GetTweetInfo(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	tweet := new(model.Tweet)
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).First(tweet).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get tweet")
	}
	return tweet, nil
}

func GetTweetsByUser(ctx context.Context, userId int64) ([]*model.Tweet, error) {
	var tweets []*model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("user_id = ?", userId).
		Order("created_at DESC").Find(&tweets).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to list tweets")
	}
	return tweets, nil
}

func UpdateTweetContent(ctx context.Context, tweetId int64, content string) (int64, error) {
	result := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).
		Update("content", content)
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "Failed to update tweet")
	}
	return result.RowsAffected, nil
}

func DeleteTweet(ctx context.Context, tweetId int64) (int64, error) {
	result := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{})
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "Failed to delete tweet")
	}
	return result.RowsAffected, nil
}

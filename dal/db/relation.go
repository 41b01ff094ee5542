package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"VideoTube.com/cmd/model"
)

// AddSubscription 原子订阅 (channel, subscriber)唯一索引冲突时返回false
func AddSubscription(ctx context.Context, sub *model.Subscription) (bool, error) {
	result := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
	if result.Error != nil {
		return false, errors.WithMessage(result.Error, "Failed to add subscription")
	}
	return result.RowsAffected > 0, nil
}

func RemoveSubscription(ctx context.Context, channelId, subscriberId int64) (int64, error) {
	result := DB.WithContext(ctx).
		Where("channel_id = ? AND subscriber_id = ?", channelId, subscriberId).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "Failed to remove subscription")
	}
	return result.RowsAffected, nil
}

func GetSubscriptionsByChannel(ctx context.Context, channelId int64) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).
		Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to list channel subscribers")
	}
	return subs, nil
}

func GetSubscriptionsBySubscriber(ctx context.Context, subscriberId int64) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).
		Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to list subscribed channels")
	}
	return subs, nil
}

func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "Failed to count subscribers")
	}
	return count, nil
}

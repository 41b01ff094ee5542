package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
)

type SubscriptionService struct {
	ctx context.Context
}

func NewSubscriptionService(ctx context.Context) *SubscriptionService {
	return &SubscriptionService{ctx: ctx}
}

// ToggleSubscription 原子订阅/退订 (channel, subscriber)唯一索引兜底并发
func (s *SubscriptionService) ToggleSubscription(channelId, subscriberId int64) (bool, error) {
	if channelId == subscriberId {
		return false, errno.ParamErr.WithMessage("cannot subscribe to yourself")
	}
	exist, err := db.IsUserExist(s.ctx, channelId)
	if err != nil {
		return false, err
	}
	if !exist {
		return false, errno.RecordNotFoundErr.WithMessage("channel not found")
	}

	inserted, err := db.AddSubscription(s.ctx, &model.Subscription{
		SubscriptionId: utils.NewID(),
		ChannelId:      channelId,
		SubscriberId:   subscriberId,
	})
	if err != nil {
		return false, err
	}
	if inserted {
		return true, nil
	}
	if _, err := db.RemoveSubscription(s.ctx, channelId, subscriberId); err != nil {
		return false, err
	}
	return false, nil
}

// GetChannelSubscribers 频道的订阅者列表 双方都只暴露安全投影
func (s *SubscriptionService) GetChannelSubscribers(channelId int64) ([]*model.SubscriptionDetail, error) {
	exist, err := db.IsUserExist(s.ctx, channelId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("channel not found")
	}
	subs, err := db.GetSubscriptionsByChannel(s.ctx, channelId)
	if err != nil {
		return nil, err
	}
	return s.assemble(subs)
}

// GetSubscribedChannels 用户订阅的频道列表
func (s *SubscriptionService) GetSubscribedChannels(subscriberId int64) ([]*model.SubscriptionDetail, error) {
	exist, err := db.IsUserExist(s.ctx, subscriberId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}
	subs, err := db.GetSubscriptionsBySubscriber(s.ctx, subscriberId)
	if err != nil {
		return nil, err
	}
	return s.assemble(subs)
}

func (s *SubscriptionService) assemble(subs []*model.Subscription) ([]*model.SubscriptionDetail, error) {
	userIds := make([]int64, 0, len(subs)*2)
	for _, sub := range subs {
		userIds = append(userIds, sub.ChannelId, sub.SubscriberId)
	}
	users, err := db.GetUsersByIds(s.ctx, userIds)
	if err != nil {
		return nil, err
	}

	details := make([]*model.SubscriptionDetail, 0, len(subs))
	for _, sub := range subs {
		detail := &model.SubscriptionDetail{Subscription: *sub}
		if u, ok := users[sub.ChannelId]; ok {
			detail.Channel = u.Summary()
		}
		if u, ok := users[sub.SubscriberId]; ok {
			detail.Subscriber = u.Summary()
		}
		details = append(details, detail)
	}
	return details, nil
}

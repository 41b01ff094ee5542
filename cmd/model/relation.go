package model

import "time"

// Subscription 订阅关系 (channel, subscriber) 唯一
type Subscription struct {
	SubscriptionId int64     `json:"subscription_id" gorm:"primaryKey;column:subscription_id"`
	ChannelId      int64     `json:"channel_id" gorm:"column:channel_id;uniqueIndex:uk_channel_subscriber,priority:1"`
	SubscriberId   int64     `json:"subscriber_id" gorm:"column:subscriber_id;uniqueIndex:uk_channel_subscriber,priority:2"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// SubscriptionDetail 订阅行连同双方的安全投影
type SubscriptionDetail struct {
	Subscription
	Channel    *UserSummary `json:"channel,omitempty"`
	Subscriber *UserSummary `json:"subscriber,omitempty"`
}

// ChannelStats 面板统计
type ChannelStats struct {
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalLikes       int64 `json:"total_likes"`
}

package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/cache"
)

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

// GetChannelStats 频道统计 短TTL缓存兜住面板轮询
func (s *DashboardService) GetChannelStats(userId int64) (*model.ChannelStats, error) {
	if stats := cache.GetChannelStats(s.ctx, userId); stats != nil {
		return stats, nil
	}

	subscribers, err := db.GetSubscriberCount(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	videoCount, viewSum, err := db.GetVideoStatsByUser(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	likes, err := db.CountLikesOnUserContent(s.ctx, userId)
	if err != nil {
		return nil, err
	}

	stats := &model.ChannelStats{
		TotalSubscribers: subscribers,
		TotalVideos:      videoCount,
		TotalViews:       viewSum,
		TotalLikes:       likes,
	}
	cache.SetChannelStats(s.ctx, userId, stats)
	return stats, nil
}

// GetChannelVideos 频道全部视频 连同作者投影
func (s *DashboardService) GetChannelVideos(userId int64) ([]*model.VideoDetail, error) {
	owner, err := db.GetUserById(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	videos, err := db.GetVideosByUser(s.ctx, userId)
	if err != nil {
		return nil, err
	}

	summary := owner.Summary()
	details := make([]*model.VideoDetail, 0, len(videos))
	for _, v := range videos {
		details = append(details, &model.VideoDetail{Video: *v, Owner: summary})
	}
	return details, nil
}

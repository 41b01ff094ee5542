package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/utils"
)

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

// toggleLike 基于唯一索引的原子toggle 插入成功即点赞 冲突则删除取消
// 同一用户的并发重复请求不会产生重复行
func (s *LikeService) toggleLike(like *model.Like) (bool, error) {
	like.LikeId = utils.NewID()
	inserted, err := db.AddLike(s.ctx, like)
	if err != nil {
		return false, err
	}
	if inserted {
		return true, nil
	}
	if _, err := db.RemoveLike(s.ctx, like.UserId, like.VideoId, like.CommentId, like.TweetId); err != nil {
		return false, err
	}
	return false, nil
}

func (s *LikeService) ToggleVideoLike(userId, videoId int64) (bool, error) {
	if _, err := db.GetVideo(s.ctx, videoId); err != nil {
		return false, err
	}
	return s.toggleLike(&model.Like{UserId: userId, VideoId: videoId})
}

func (s *LikeService) ToggleCommentLike(userId, commentId int64) (bool, error) {
	if _, err := db.GetCommentInfo(s.ctx, commentId); err != nil {
		return false, err
	}
	return s.toggleLike(&model.Like{UserId: userId, CommentId: commentId})
}

func (s *LikeService) ToggleTweetLike(userId, tweetId int64) (bool, error) {
	if _, err := db.GetTweetInfo(s.ctx, tweetId); err != nil {
		return false, err
	}
	return s.toggleLike(&model.Like{UserId: userId, TweetId: tweetId})
}

// GetLikedVideos 用户点赞过的视频 连同视频作者投影 保持点赞时间序
func (s *LikeService) GetLikedVideos(userId int64) ([]*model.VideoDetail, error) {
	videoIds, err := db.GetLikedVideoIds(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	videos, err := db.GetVideosByIds(s.ctx, videoIds)
	if err != nil {
		return nil, err
	}

	byId := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		byId[v.VideoId] = v
		ownerIds = append(ownerIds, v.UserId)
	}
	owners, err := db.GetUsersByIds(s.ctx, ownerIds)
	if err != nil {
		return nil, err
	}

	details := make([]*model.VideoDetail, 0, len(videoIds))
	for _, id := range videoIds {
		v, ok := byId[id]
		if !ok {
			// 点赞行还在但视频已删 跳过
			hlog.CtxWarnf(s.ctx, "liked video %d no longer exists", id)
			continue
		}
		detail := &model.VideoDetail{Video: *v}
		if u, ok := owners[v.UserId]; ok {
			detail.Owner = u.Summary()
		}
		details = append(details, detail)
	}
	return details, nil
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"

	"VideoTube.com/cmd/model"
)

const (
	videoInfoKeyTemplate = "video:info:%d"
	videoInfoTTL         = 10 * time.Minute
)

// GetVideoInfo 缓存未命中或不可用时返回nil而非错误
func GetVideoInfo(ctx context.Context, videoId int64) *model.VideoDetail {
	if !Enabled() {
		return nil
	}
	val, err := rdb.Get(ctx, fmt.Sprintf(videoInfoKeyTemplate, videoId)).Result()
	if err != nil {
		if err != redis.Nil {
			hlog.CtxWarnf(ctx, "video cache get failed: %v", err)
		}
		return nil
	}
	detail := new(model.VideoDetail)
	if err := json.Unmarshal([]byte(val), detail); err != nil {
		hlog.CtxWarnf(ctx, "video cache decode failed: %v", err)
		return nil
	}
	return detail
}

func SetVideoInfo(ctx context.Context, detail *model.VideoDetail) {
	if !Enabled() || detail == nil {
		return
	}
	b, err := json.Marshal(detail)
	if err != nil {
		return
	}
	key := fmt.Sprintf(videoInfoKeyTemplate, detail.VideoId)
	if err := rdb.Set(ctx, key, b, videoInfoTTL).Err(); err != nil {
		hlog.CtxWarnf(ctx, "video cache set failed: %v", err)
	}
}

// DelVideoInfo 更新或删除视频后失效缓存
func DelVideoInfo(ctx context.Context, videoId int64) {
	if !Enabled() {
		return
	}
	if err := rdb.Del(ctx, fmt.Sprintf(videoInfoKeyTemplate, videoId)).Err(); err != nil {
		hlog.CtxWarnf(ctx, "video cache del failed: %v", err)
	}
}

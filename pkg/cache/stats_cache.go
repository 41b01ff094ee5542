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
	channelStatsKeyTemplate = "dashboard:stats:%d"
	channelStatsTTL         = time.Minute
)

func GetChannelStats(ctx context.Context, userId int64) *model.ChannelStats {
	if !Enabled() {
		return nil
	}
	val, err := rdb.Get(ctx, fmt.Sprintf(channelStatsKeyTemplate, userId)).Result()
	if err != nil {
		if err != redis.Nil {
			hlog.CtxWarnf(ctx, "stats cache get failed: %v", err)
		}
		return nil
	}
	stats := new(model.ChannelStats)
	if err := json.Unmarshal([]byte(val), stats); err != nil {
		return nil
	}
	return stats
}

func SetChannelStats(ctx context.Context, userId int64, stats *model.ChannelStats) {
	if !Enabled() || stats == nil {
		return
	}
	b, err := json.Marshal(stats)
	if err != nil {
		return
	}
	key := fmt.Sprintf(channelStatsKeyTemplate, userId)
	if err := rdb.Set(ctx, key, b, channelStatsTTL).Err(); err != nil {
		hlog.CtxWarnf(ctx, "stats cache set failed: %v", err)
	}
}

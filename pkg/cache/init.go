package cache

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"

	"VideoTube.com/config"
)

var rdb *redis.Client

func Load() {
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		hlog.Warnf("redis unreachable, cache disabled: %v", err)
	}
}

// Enabled 缓存不可用时所有读写直接短路
func Enabled() bool {
	return rdb != nil
}

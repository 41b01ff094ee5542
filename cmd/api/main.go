package main

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"

	"VideoTube.com/config"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/errno"
	jwt "VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/oss"
	"VideoTube.com/pkg/utils"
)

func Init() {
	config.Init()
	db.Init()
	cache.Load()
	jwt.AccessTokenJwtInit()
	if err := utils.InitSnowflake(1); err != nil {
		panic(err)
	}
	if err := oss.InitMinio(); err != nil {
		panic(err)
	}
}

func main() {
	Init()
	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(config.ConfigInfo.Server.MaxRequestBody),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("internal error: %v", err),
				"success": false,
			})
		})))

	register(r)

	r.Spin()
}

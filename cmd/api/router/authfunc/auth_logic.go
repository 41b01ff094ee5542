package authfunc

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	handlers "VideoTube.com/cmd/api/handlers"
	"VideoTube.com/pkg/errno"
	jwt "VideoTube.com/pkg/jwt"
)

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		AccessTokenAuthFunc(),
	)
}

// AccessTokenAuthFunc 校验Bearer token 把调用方用户ID写入请求上下文
func AccessTokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		authHeader := string(c.GetHeader("Authorization"))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			handlers.SendResponse(c, errno.AuthorizationFailedErr, nil)
			c.Abort()
			return
		}
		userId, err := jwt.ParseAccessToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			handlers.SendResponse(c, errno.AuthorizationFailedErr.WithMessage("invalid access token"), nil)
			c.Abort()
			return
		}
		handlers.SetAuthUserId(c, userId)
		c.Next(ctx)
	}
}

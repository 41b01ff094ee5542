package authfunc

import (
	"context"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"

	handlers "VideoTube.com/cmd/api/handlers"
	"VideoTube.com/config"
	"VideoTube.com/pkg/errno"
	jwt "VideoTube.com/pkg/jwt"
)

func newAuthedEngine(t *testing.T) *route.Engine {
	t.Helper()
	config.ConfigInfo.Jwt.Secret = "unit-test-secret"
	config.ConfigInfo.Jwt.Issuer = "videotube-test"
	jwt.AccessTokenJwtInit()

	e := route.NewEngine(hertzconfig.NewOptions([]hertzconfig.Option{}))
	e.GET("/protected", append(Auth(), func(ctx context.Context, c *app.RequestContext) {
		userId, err := handlers.AuthUserId(c)
		assert.NoError(t, err)
		handlers.SendResponse(c, errno.Success, map[string]interface{}{"user_id": userId})
	})...)
	return e
}

func TestAuthMissingHeader(t *testing.T) {
	e := newAuthedEngine(t)
	w := ut.PerformRequest(e, "GET", "/protected", nil)
	assert.Equal(t, 401, w.Result().StatusCode())
}

func TestAuthMalformedHeader(t *testing.T) {
	e := newAuthedEngine(t)
	w := ut.PerformRequest(e, "GET", "/protected", nil,
		ut.Header{Key: "Authorization", Value: "Basic dXNlcjpwYXNz"})
	assert.Equal(t, 401, w.Result().StatusCode())
}

func TestAuthGarbageToken(t *testing.T) {
	e := newAuthedEngine(t)
	w := ut.PerformRequest(e, "GET", "/protected", nil,
		ut.Header{Key: "Authorization", Value: "Bearer not.a.token"})
	assert.Equal(t, 401, w.Result().StatusCode())
}

func TestAuthValidToken(t *testing.T) {
	e := newAuthedEngine(t)
	token, err := jwt.GenerateAccessToken(88)
	assert.NoError(t, err)

	w := ut.PerformRequest(e, "GET", "/protected", nil,
		ut.Header{Key: "Authorization", Value: "Bearer " + token})
	assert.Equal(t, 200, w.Result().StatusCode())
}

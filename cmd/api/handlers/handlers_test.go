package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VideoTube.com/config"
	"VideoTube.com/pkg/errno"
)

func newTestEngine() *route.Engine {
	return route.NewEngine(hertzconfig.NewOptions([]hertzconfig.Option{}))
}

func decodeResponse(t *testing.T, body []byte) Response {
	t.Helper()
	var resp Response
	assert.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestGetVideoInvalidId(t *testing.T) {
	e := newTestEngine()
	e.GET("/videos/:video_id", GetVideo)

	for _, raw := range []string{"abc", "0", "-3", "1.5"} {
		w := ut.PerformRequest(e, "GET", "/videos/"+raw, nil)
		resp := w.Result()
		assert.Equal(t, 400, resp.StatusCode())
		body := decodeResponse(t, resp.Body())
		assert.Equal(t, int64(errno.ParamErrCode), body.Code)
		assert.False(t, body.Success)
	}
}

func TestListVideosMissingUserId(t *testing.T) {
	e := newTestEngine()
	e.GET("/videos", ListVideos)

	w := ut.PerformRequest(e, "GET", "/videos?query=cats", nil)
	resp := w.Result()
	assert.Equal(t, 400, resp.StatusCode())
	body := decodeResponse(t, resp.Body())
	assert.Equal(t, int64(errno.ParamErrCode), body.Code)
	assert.Contains(t, body.Message, "user_id")
}

func TestAddCommentWithoutAuth(t *testing.T) {
	e := newTestEngine()
	e.POST("/comments/:video_id", AddComment)

	payload := `{"content":"nice"}`
	w := ut.PerformRequest(e, "POST", "/comments/42",
		&ut.Body{Body: bytes.NewBufferString(payload), Len: len(payload)},
		ut.Header{Key: "Content-Type", Value: "application/json"})
	resp := w.Result()
	assert.Equal(t, 401, resp.StatusCode())
	body := decodeResponse(t, resp.Body())
	assert.Equal(t, int64(errno.AuthorizationFailedErrCode), body.Code)
}

func TestAddCommentEmptyContent(t *testing.T) {
	e := newTestEngine()
	e.POST("/comments/:video_id", func(ctx context.Context, c *app.RequestContext) {
		SetAuthUserId(c, 7)
		AddComment(ctx, c)
	})

	payload := `{}`
	w := ut.PerformRequest(e, "POST", "/comments/42",
		&ut.Body{Body: bytes.NewBufferString(payload), Len: len(payload)},
		ut.Header{Key: "Content-Type", Value: "application/json"})
	resp := w.Result()
	assert.Equal(t, 400, resp.StatusCode())
	body := decodeResponse(t, resp.Body())
	assert.Equal(t, int64(errno.ParamErrCode), body.Code)
	assert.Contains(t, body.Message, "content")
}

func TestUpdateCommentEmptyContent(t *testing.T) {
	e := newTestEngine()
	e.PUT("/comments/:comment_id", UpdateComment)

	payload := `{"content":""}`
	w := ut.PerformRequest(e, "PUT", "/comments/9",
		&ut.Body{Body: bytes.NewBufferString(payload), Len: len(payload)},
		ut.Header{Key: "Content-Type", Value: "application/json"})
	resp := w.Result()
	assert.Equal(t, 400, resp.StatusCode())
	body := decodeResponse(t, resp.Body())
	assert.Equal(t, int64(errno.ParamErrCode), body.Code)
}

func TestPublishVideoMissingTitle(t *testing.T) {
	e := newTestEngine()
	e.POST("/videos", func(ctx context.Context, c *app.RequestContext) {
		SetAuthUserId(c, 7)
		PublishVideo(ctx, c)
	})

	w := ut.PerformRequest(e, "POST", "/videos", nil)
	resp := w.Result()
	assert.Equal(t, 400, resp.StatusCode())
	body := decodeResponse(t, resp.Body())
	assert.Equal(t, int64(errno.ParamErrCode), body.Code)
	assert.Contains(t, body.Message, "title")
}

func TestPublishVideoWithoutThumbnail(t *testing.T) {
	config.ConfigInfo.Server.UploadStagePath = t.TempDir()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "no thumbnail"))
	fw, err := mw.CreateFormFile("video_file", "clip.mp4")
	require.NoError(t, err)
	_, err = fw.Write([]byte("not a real video"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	e := newTestEngine()
	e.POST("/videos", func(ctx context.Context, c *app.RequestContext) {
		SetAuthUserId(c, 7)
		PublishVideo(ctx, c)
	})

	w := ut.PerformRequest(e, "POST", "/videos",
		&ut.Body{Body: &buf, Len: buf.Len()},
		ut.Header{Key: "Content-Type", Value: mw.FormDataContentType()})
	resp := w.Result()

	// 缺封面不再挡在参数校验 流程走到时长探测才因坏文件失败
	assert.Equal(t, 400, resp.StatusCode())
	body := decodeResponse(t, resp.Body())
	assert.Equal(t, int64(errno.ParamErrCode), body.Code)
	assert.Contains(t, body.Message, "duration")
}

func TestDashboardWithoutAuth(t *testing.T) {
	e := newTestEngine()
	e.GET("/dashboard/stats", GetChannelStats)
	e.GET("/dashboard/videos", GetChannelVideos)

	for _, path := range []string{"/dashboard/stats", "/dashboard/videos"} {
		w := ut.PerformRequest(e, "GET", path, nil)
		resp := w.Result()
		assert.Equal(t, 401, resp.StatusCode())
		body := decodeResponse(t, resp.Body())
		assert.Equal(t, int64(errno.AuthorizationFailedErrCode), body.Code)
		assert.False(t, body.Success)
	}
}

func TestToggleSubscriptionWithoutAuth(t *testing.T) {
	e := newTestEngine()
	e.POST("/subscriptions/:channel_id", ToggleSubscription)

	w := ut.PerformRequest(e, "POST", "/subscriptions/15", nil)
	resp := w.Result()
	assert.Equal(t, 401, resp.StatusCode())
}

func TestSendResponseEnvelope(t *testing.T) {
	e := newTestEngine()
	e.GET("/ok", func(ctx context.Context, c *app.RequestContext) {
		SendResponse(c, errno.Success, map[string]interface{}{"hello": "world"})
	})
	e.GET("/missing", func(ctx context.Context, c *app.RequestContext) {
		SendResponse(c, errno.RecordNotFoundErr, nil)
	})

	w := ut.PerformRequest(e, "GET", "/ok", nil)
	resp := w.Result()
	assert.Equal(t, 200, resp.StatusCode())
	body := decodeResponse(t, resp.Body())
	assert.Equal(t, int64(errno.SuccessCode), body.Code)
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data)

	w = ut.PerformRequest(e, "GET", "/missing", nil)
	resp = w.Result()
	assert.Equal(t, 404, resp.StatusCode())
	body = decodeResponse(t, resp.Body())
	assert.Equal(t, int64(errno.RecordNotFoundErrCode), body.Code)
	assert.False(t, body.Success)
	assert.Nil(t, body.Data)
}

func TestAuthUserIdRoundTrip(t *testing.T) {
	e := newTestEngine()
	e.GET("/whoami", func(ctx context.Context, c *app.RequestContext) {
		SetAuthUserId(c, 1024)
		userId, err := AuthUserId(c)
		assert.NoError(t, err)
		SendResponse(c, errno.Success, map[string]interface{}{"user_id": userId})
	})

	w := ut.PerformRequest(e, "GET", "/whoami", nil)
	resp := w.Result()
	assert.Equal(t, 200, resp.StatusCode())
	body := decodeResponse(t, resp.Body())
	data, ok := body.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(1024), data["user_id"])
}

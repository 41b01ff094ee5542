package handlers

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VideoTube.com/cmd/model"
	"VideoTube.com/config"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/utils"
)

var listTestDBOnce sync.Once

// 需要可连接的MySQL实例 go test -short跳过
func setupListTestDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("requires a live mysql instance")
	}
	listTestDBOnce.Do(func() {
		config.Init()
		db.Init()
		if err := db.DB.AutoMigrate(&model.User{}); err != nil {
			panic(err)
		}
	})
}

func TestListCommentsEchoesNormalizedPaging(t *testing.T) {
	setupListTestDB(t)
	ctx := context.Background()

	u := &model.User{UserId: utils.NewID(), FullName: "pager"}
	u.Email = fmt.Sprintf("u%d@example.com", u.UserId)
	require.NoError(t, db.DB.Create(u).Error)
	t.Cleanup(func() { db.DB.Delete(u) })

	v := &model.Video{
		VideoId:     utils.NewID(),
		UserId:      u.UserId,
		Title:       "pager",
		IsPublished: true,
	}
	require.NoError(t, db.InsertVideo(ctx, v))
	t.Cleanup(func() { db.DB.Where("video_id = ?", v.VideoId).Delete(&model.Video{}) })
	t.Cleanup(func() { db.DB.Where("video_id = ?", v.VideoId).Delete(&model.Comment{}) })

	for i := 0; i < 3; i++ {
		require.NoError(t, db.CreateComment(ctx, &model.Comment{
			CommentId: utils.NewID(),
			VideoId:   v.VideoId,
			UserId:    u.UserId,
			Content:   fmt.Sprintf("comment %d", i),
		}))
	}

	e := newTestEngine()
	e.GET("/comments/:video_id", ListComments)

	// page_num=0会被规整为1 响应里回显的必须是规整值
	w := ut.PerformRequest(e, "GET",
		fmt.Sprintf("/comments/%d?page_num=0&page_size=0", v.VideoId), nil)
	resp := w.Result()
	assert.Equal(t, 200, resp.StatusCode())

	body := decodeResponse(t, resp.Body())
	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["page_num"])
	assert.Equal(t, float64(10), data["page_size"])
	assert.Equal(t, float64(3), data["total"])
}

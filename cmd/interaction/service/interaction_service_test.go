package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VideoTube.com/cmd/model"
	"VideoTube.com/config"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/utils"
)

var testDBOnce sync.Once

// 这些用例需要可连接的MySQL实例 go test -short跳过
func setupDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("requires a live mysql instance")
	}
	testDBOnce.Do(func() {
		config.Init()
		db.Init()
		// users表平时归认证系统建 测试库自己补齐
		if err := db.DB.AutoMigrate(&model.User{}); err != nil {
			panic(err)
		}
	})
}

func seedUser(t *testing.T) *model.User {
	t.Helper()
	u := &model.User{
		UserId:   utils.NewID(),
		FullName: "test user",
	}
	u.Email = fmt.Sprintf("u%d@example.com", u.UserId)
	require.NoError(t, db.DB.Create(u).Error)
	t.Cleanup(func() { db.DB.Delete(u) })
	return u
}

func seedVideo(t *testing.T, userId int64) *model.Video {
	t.Helper()
	v := &model.Video{
		VideoId:     utils.NewID(),
		UserId:      userId,
		Title:       "test video",
		VideoUrl:    "http://localhost:9000/video/0/video.mp4",
		CoverUrl:    "http://localhost:9000/picture/0/cover.jpg",
		Duration:    1.5,
		IsPublished: true,
	}
	require.NoError(t, db.InsertVideo(context.Background(), v))
	t.Cleanup(func() { db.DB.Where("video_id = ?", v.VideoId).Delete(&model.Video{}) })
	return v
}

func TestToggleVideoLikeInvolution(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	owner := seedUser(t)
	liker := seedUser(t)
	video := seedVideo(t, owner.UserId)
	t.Cleanup(func() {
		db.DB.Where("user_id = ?", liker.UserId).Delete(&model.Like{})
	})

	svc := NewLikeService(ctx)

	liked, err := svc.ToggleVideoLike(liker.UserId, video.VideoId)
	require.NoError(t, err)
	assert.True(t, liked)

	ids, err := db.GetLikedVideoIds(ctx, liker.UserId)
	require.NoError(t, err)
	assert.Contains(t, ids, video.VideoId)

	liked, err = svc.ToggleVideoLike(liker.UserId, video.VideoId)
	require.NoError(t, err)
	assert.False(t, liked)

	ids, err = db.GetLikedVideoIds(ctx, liker.UserId)
	require.NoError(t, err)
	assert.NotContains(t, ids, video.VideoId)

	// 第三次回到点赞态
	liked, err = svc.ToggleVideoLike(liker.UserId, video.VideoId)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestCommentPagesDisjoint(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	owner := seedUser(t)
	video := seedVideo(t, owner.UserId)
	t.Cleanup(func() {
		db.DB.Where("video_id = ?", video.VideoId).Delete(&model.Comment{})
	})

	svc := NewCommentService(ctx)
	for i := 0; i < 15; i++ {
		_, err := svc.CreateComment(owner.UserId, video.VideoId, fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
	}

	page1, total, err := svc.ListComments(video.VideoId, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.Len(t, page1, 10)

	page2, _, err := svc.ListComments(video.VideoId, 2, 10)
	require.NoError(t, err)
	assert.Len(t, page2, 5)

	seen := make(map[int64]struct{}, len(page1))
	for _, cmt := range page1 {
		seen[cmt.CommentId] = struct{}{}
	}
	for _, cmt := range page2 {
		_, dup := seen[cmt.CommentId]
		assert.False(t, dup)
	}
}

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

func TestAddVideoIdempotent(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	owner := seedUser(t)
	video := seedVideo(t, owner.UserId)

	svc := NewPlaylistService(ctx)
	created, err := svc.CreatePlaylist(owner.UserId, "favorites", "idempotence check")
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.DeletePlaylist(created.PlaylistId) })

	first, err := svc.AddVideo(created.PlaylistId, video.VideoId)
	require.NoError(t, err)
	assert.Len(t, first.Videos, 1)

	// 重复添加不报错 也不会多出第二条成员关系
	second, err := svc.AddVideo(created.PlaylistId, video.VideoId)
	require.NoError(t, err)
	assert.Len(t, second.Videos, 1)

	var rows int64
	require.NoError(t, db.DB.Model(&model.PlaylistVideo{}).
		Where("playlist_id = ? AND video_id = ?", created.PlaylistId, video.VideoId).
		Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestRemoveVideoNotInPlaylist(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	owner := seedUser(t)
	video := seedVideo(t, owner.UserId)

	svc := NewPlaylistService(ctx)
	created, err := svc.CreatePlaylist(owner.UserId, "watch later", "noop removal check")
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.DeletePlaylist(created.PlaylistId) })

	// 视频从未加入 删除是no-op 返回的收藏夹照常为空
	detail, err := svc.RemoveVideo(created.PlaylistId, video.VideoId)
	require.NoError(t, err)
	assert.Len(t, detail.Videos, 0)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VideoTube.com/cmd/model"
	"VideoTube.com/config"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/errno"
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

func TestToggleSubscriptionSelf(t *testing.T) {
	// 自我订阅在任何存储访问之前被拒绝
	_, err := NewSubscriptionService(context.Background()).ToggleSubscription(5, 5)
	require.Error(t, err)

	var e errno.ErrNo
	require.True(t, errors.As(err, &e))
	assert.Equal(t, int64(errno.ParamErrCode), e.ErrCode)
}

func TestToggleSubscriptionUnknownChannel(t *testing.T) {
	setupDB(t)
	subscriber := seedUser(t)

	_, err := NewSubscriptionService(context.Background()).
		ToggleSubscription(utils.NewID(), subscriber.UserId)
	require.Error(t, err)

	var e errno.ErrNo
	require.True(t, errors.As(err, &e))
	assert.Equal(t, int64(errno.RecordNotFoundErrCode), e.ErrCode)
}

func TestToggleSubscriptionInvolution(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	channel := seedUser(t)
	subscriber := seedUser(t)
	t.Cleanup(func() {
		db.DB.Where("channel_id = ?", channel.UserId).Delete(&model.Subscription{})
	})

	svc := NewSubscriptionService(ctx)

	on, err := svc.ToggleSubscription(channel.UserId, subscriber.UserId)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = svc.ToggleSubscription(channel.UserId, subscriber.UserId)
	require.NoError(t, err)
	assert.False(t, on)

	count, err := db.GetSubscriberCount(ctx, channel.UserId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

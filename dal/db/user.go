package db

import (
	"context"

	"github.com/pkg/errors"

	"VideoTube.com/cmd/model"
)

// 读用户时永远只投影安全字段
const userSafeColumns = "user_id, full_name, email, avatar, cover_image"

func GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	user := new(model.User)
	if err := DB.WithContext(ctx).Model(&model.User{}).Select(userSafeColumns).
		Where("user_id = ?", userId).First(user).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get user")
	}
	return user, nil
}

// GetUsersByIds 批量查询 返回按ID索引的map 方便装配投影
func GetUsersByIds(ctx context.Context, userIds []int64) (map[int64]*model.User, error) {
	users := make([]*model.User, 0, len(userIds))
	if len(userIds) == 0 {
		return map[int64]*model.User{}, nil
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Select(userSafeColumns).
		Where("user_id IN (?)", userIds).Find(&users).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get users")
	}
	m := make(map[int64]*model.User, len(users))
	for _, u := range users {
		m[u.UserId] = u
	}
	return m, nil
}

func IsUserExist(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

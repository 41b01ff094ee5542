package db

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/utils"
)

// 允许的排序键 防止排序参数拼进SQL
var videoSortColumns = map[string]string{
	"created_at": "created_at",
	"view_count": "view_count",
	"duration":   "duration",
	"title":      "title",
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.WithMessage(err, "Failed to insert video")
	}
	return nil
}

func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	video := new(model.Video)
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(video).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get video")
	}
	return video, nil
}

// QueryVideos 按作者检索 标题或描述大小写不敏感子串匹配 检索词先转义
func QueryVideos(ctx context.Context, userId int64, query, sortBy, sortType string, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	var videos []*model.Video
	var count int64

	pattern := "%" + utils.EscapeLike(query) + "%"
	tx := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", userId).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)

	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "Failed to count videos")
	}

	column, ok := videoSortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if sortType == "asc" {
		direction = "ASC"
	}

	if err := tx.Order(fmt.Sprintf("%s %s", column, direction)).
		Limit(int(pageSize)).Offset(int((pageNum - 1) * pageSize)).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "Failed to query videos")
	}
	return videos, count, nil
}

func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, len(videoIds))
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id IN (?)", videoIds).Find(&videos).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get videos by ids")
	}
	return videos, nil
}

func GetVideosByUser(ctx context.Context, userId int64) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).
		Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get videos by user")
	}
	return videos, nil
}

// UpdateVideoInfo 局部更新 返回受影响行数供上层判定404
func UpdateVideoInfo(ctx context.Context, videoId int64, updates map[string]interface{}) (int64, error) {
	result := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Updates(updates)
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "Failed to update video")
	}
	return result.RowsAffected, nil
}

func DeleteVideo(ctx context.Context, videoId int64) (int64, error) {
	result := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{})
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "Failed to delete video")
	}
	return result.RowsAffected, nil
}

// TogglePublish 单条UPDATE在库内取反 不做读改写
func TogglePublish(ctx context.Context, videoId int64) (int64, error) {
	result := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		UpdateColumn("is_published", gorm.Expr("NOT is_published"))
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "Failed to toggle publish status")
	}
	return result.RowsAffected, nil
}

// AddVideoViewCount 原子自增播放数
func AddVideoViewCount(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

type videoStats struct {
	VideoCount int64
	ViewSum    int64
}

// GetVideoStatsByUser 面板用 一次查询拿到视频总数和播放总量
func GetVideoStatsByUser(ctx context.Context, userId int64) (videoCount, viewSum int64, err error) {
	var stats videoStats
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Select("COUNT(*) AS video_count, IFNULL(SUM(view_count), 0) AS view_sum").
		Where("user_id = ?", userId).Scan(&stats).Error; err != nil {
		return 0, 0, errors.WithMessage(err, "Failed to get video stats")
	}
	return stats.VideoCount, stats.ViewSum, nil
}

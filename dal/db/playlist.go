package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"VideoTube.com/cmd/model"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.WithMessage(err, "Failed to create playlist")
	}
	return nil
}

func GetPlaylistInfo(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	playlist := new(model.Playlist)
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).First(playlist).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get playlist")
	}
	return playlist, nil
}

func GetPlaylistsByUser(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	var playlists []*model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("user_id = ?", userId).
		Order("created_at DESC").Find(&playlists).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to list playlists")
	}
	return playlists, nil
}

func UpdatePlaylistInfo(ctx context.Context, playlistId int64, updates map[string]interface{}) (int64, error) {
	result := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).Updates(updates)
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "Failed to update playlist")
	}
	return result.RowsAffected, nil
}

// DeletePlaylist 同一事务里先清成员关系再删收藏夹
func DeletePlaylist(ctx context.Context, playlistId int64) (int64, error) {
	var affected int64
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		result := tx.Where("playlist_id = ?", playlistId).Delete(&model.Playlist{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to delete playlist")
	}
	return affected, nil
}

// AddPlaylistVideo 集合插入 重复添加靠唯一索引变成no-op
func AddPlaylistVideo(ctx context.Context, pv *model.PlaylistVideo) (bool, error) {
	result := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(pv)
	if result.Error != nil {
		return false, errors.WithMessage(result.Error, "Failed to add video to playlist")
	}
	return result.RowsAffected > 0, nil
}

// RemovePlaylistVideo 集合删除 非成员删除是no-op不报错
func RemovePlaylistVideo(ctx context.Context, playlistId, videoId int64) (int64, error) {
	result := DB.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{})
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "Failed to remove video from playlist")
	}
	return result.RowsAffected, nil
}

// GetPlaylistVideoIds 按加入时间排序的成员视频ID
func GetPlaylistVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Order("created_at ASC").
		Pluck("video_id", &list).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get playlist video ids")
	}
	return list, nil
}

// IsVideoInPlaylist 写后校验成员关系
func IsVideoInPlaylist(ctx context.Context, playlistId, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

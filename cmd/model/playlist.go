package model

import "time"

type Playlist struct {
	PlaylistId  int64     `json:"playlist_id" gorm:"primaryKey;column:playlist_id"`
	UserId      int64     `json:"user_id" gorm:"index;column:user_id"`
	Name        string    `json:"name" gorm:"column:name;type:varchar(255)"`
	Description string    `json:"description" gorm:"column:description;type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo 收藏夹与视频的成员关系 唯一索引保证集合语义
type PlaylistVideo struct {
	Id         int64     `json:"-" gorm:"primaryKey;column:id"`
	PlaylistId int64     `json:"playlist_id" gorm:"column:playlist_id;uniqueIndex:uk_playlist_video,priority:1"`
	VideoId    int64     `json:"video_id" gorm:"column:video_id;uniqueIndex:uk_playlist_video,priority:2"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}

type PlaylistDetail struct {
	Playlist
	Owner  *UserSummary   `json:"owner,omitempty"`
	Videos []*VideoDetail `json:"videos"`
}

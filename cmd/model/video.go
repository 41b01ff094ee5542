package model

import "time"

type Video struct {
	VideoId     int64     `json:"video_id" gorm:"primaryKey;column:video_id"`
	UserId      int64     `json:"user_id" gorm:"index;column:user_id"`
	Title       string    `json:"title" gorm:"column:title;type:varchar(255)"`
	Description string    `json:"description" gorm:"column:description;type:text"`
	VideoUrl    string    `json:"video_url" gorm:"column:video_url;type:varchar(512)"`
	CoverUrl    string    `json:"cover_url" gorm:"column:cover_url;type:varchar(512)"`
	Duration    float64   `json:"duration" gorm:"column:duration"`
	ViewCount   int64     `json:"view_count" gorm:"column:view_count;default:0"`
	IsPublished bool      `json:"is_published" gorm:"column:is_published;default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Video) TableName() string {
	return "videos"
}

// VideoDetail 视频信息与投影后的作者信息
type VideoDetail struct {
	Video
	Owner *UserSummary `json:"owner,omitempty"`
}

package model

import "time"

type Comment struct {
	CommentId int64     `json:"comment_id" gorm:"primaryKey;column:comment_id"`
	VideoId   int64     `json:"video_id" gorm:"index;column:video_id"`
	UserId    int64     `json:"user_id" gorm:"index;column:user_id"`
	Content   string    `json:"content" gorm:"column:content;type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentDetail 评论连同作者投影和视频摘要
type CommentDetail struct {
	Comment
	Owner *UserSummary `json:"owner,omitempty"`
	Video *Video       `json:"video,omitempty"`
}

// Like 点赞记录 三个目标列互斥 未使用的目标列为0
// 复合唯一索引保证同一用户对同一目标至多一条记录 toggle依赖该约束做原子插入
type Like struct {
	LikeId    int64     `json:"like_id" gorm:"primaryKey;column:like_id"`
	UserId    int64     `json:"user_id" gorm:"column:user_id;uniqueIndex:uk_like_target,priority:1"`
	VideoId   int64     `json:"video_id,omitempty" gorm:"column:video_id;uniqueIndex:uk_like_target,priority:2"`
	CommentId int64     `json:"comment_id,omitempty" gorm:"column:comment_id;uniqueIndex:uk_like_target,priority:3"`
	TweetId   int64     `json:"tweet_id,omitempty" gorm:"column:tweet_id;uniqueIndex:uk_like_target,priority:4"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

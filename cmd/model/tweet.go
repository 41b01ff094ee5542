package model

import "time"

type Tweet struct {
	TweetId   int64     `json:"tweet_id" gorm:"primaryKey;column:tweet_id"`
	UserId    int64     `json:"user_id" gorm:"index;column:user_id"`
	Content   string    `json:"content" gorm:"column:content;type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Tweet) TableName() string {
	return "tweets"
}

type TweetDetail struct {
	Tweet
	Owner *UserSummary `json:"owner,omitempty"`
}

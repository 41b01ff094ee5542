package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"VideoTube.com/cmd/model"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.WithMessage(err, "Failed to create comment")
	}
	return nil
}

func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := new(model.Comment)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(comment).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get comment")
	}
	return comment, nil
}

// GetVideoCommentListByPart 分页获取视频的评论 新评论在前
func GetVideoCommentListByPart(ctx context.Context, videoId, pageNum, pageSize int64) ([]*model.Comment, int64, error) {
	var comments []*model.Comment
	var count int64

	tx := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId)
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "Failed to count comments")
	}
	// comment_id做tiebreaker 同一秒内的评论分页窗口才稳定
	if err := tx.Order("created_at DESC, comment_id DESC").
		Limit(int(pageSize)).Offset(int((pageNum - 1) * pageSize)).
		Find(&comments).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "Failed to list comments")
	}
	return comments, count, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string) (int64, error) {
	result := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Update("content", content)
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "Failed to update comment")
	}
	return result.RowsAffected, nil
}

func DeleteComment(ctx context.Context, commentId int64) (int64, error) {
	result := DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{})
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "Failed to delete comment")
	}
	return result.RowsAffected, nil
}

// AddLike 依赖(user,target)唯一索引做原子插入 冲突时返回false
// toggle因此不需要先查后写 并发重复请求也只会落一行
func AddLike(ctx context.Context, like *model.Like) (bool, error) {
	result := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if result.Error != nil {
		return false, errors.WithMessage(result.Error, "Failed to add like")
	}
	return result.RowsAffected > 0, nil
}

func RemoveLike(ctx context.Context, userId, videoId, commentId, tweetId int64) (int64, error) {
	result := DB.WithContext(ctx).
		Where("user_id = ? AND video_id = ? AND comment_id = ? AND tweet_id = ?",
			userId, videoId, commentId, tweetId).
		Delete(&model.Like{})
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "Failed to remove like")
	}
	return result.RowsAffected, nil
}

// GetLikedVideoIds 用户点赞过的全部视频ID 新赞在前
func GetLikedVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND video_id != 0", userId).
		Order("created_at DESC").
		Pluck("video_id", &list).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get liked video ids")
	}
	return list, nil
}

// CountLikesOnUserContent 用户名下视频/评论/推文收到的点赞总数
func CountLikesOnUserContent(ctx context.Context, userId int64) (int64, error) {
	videoIds := DB.Model(&model.Video{}).Select("video_id").Where("user_id = ?", userId)
	commentIds := DB.Model(&model.Comment{}).Select("comment_id").Where("user_id = ?", userId)
	tweetIds := DB.Model(&model.Tweet{}).Select("tweet_id").Where("user_id = ?", userId)

	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("video_id IN (?) OR comment_id IN (?) OR tweet_id IN (?)", videoIds, commentIds, tweetIds).
		Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "Failed to count likes")
	}
	return count, nil
}

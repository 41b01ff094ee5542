package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// CreateComment 新评论 目标视频必须存在
func (s *CommentService) CreateComment(userId, videoId int64, content string) (*model.CommentDetail, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		CommentId: utils.NewID(),
		VideoId:   videoId,
		UserId:    userId,
		Content:   content,
	}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		return nil, err
	}

	owner, err := db.GetUserById(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	return &model.CommentDetail{
		Comment: *comment,
		Owner:   owner.Summary(),
		Video:   video,
	}, nil
}

// ListComments 分页列出视频评论 作者投影批量装配
func (s *CommentService) ListComments(videoId, pageNum, pageSize int64) ([]*model.CommentDetail, int64, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, 0, err
	}

	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	comments, count, err := db.GetVideoCommentListByPart(s.ctx, videoId, pageNum, pageSize)
	if err != nil {
		return nil, 0, err
	}

	userIds := make([]int64, 0, len(comments))
	for _, c := range comments {
		userIds = append(userIds, c.UserId)
	}
	users, err := db.GetUsersByIds(s.ctx, userIds)
	if err != nil {
		return nil, 0, err
	}

	details := make([]*model.CommentDetail, 0, len(comments))
	for _, c := range comments {
		detail := &model.CommentDetail{Comment: *c, Video: video}
		if u, ok := users[c.UserId]; ok {
			detail.Owner = u.Summary()
		}
		details = append(details, detail)
	}
	return details, count, nil
}

func (s *CommentService) UpdateComment(commentId int64, content string) (*model.Comment, error) {
	rows, err := db.UpdateCommentContent(s.ctx, commentId, content)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// 内容未变化的更新也返回0行 再确认记录是否存在
		if _, err := db.GetCommentInfo(s.ctx, commentId); err != nil {
			return nil, err
		}
	}
	return db.GetCommentInfo(s.ctx, commentId)
}

func (s *CommentService) DeleteComment(commentId int64) error {
	rows, err := db.DeleteComment(s.ctx, commentId)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errno.RecordNotFoundErr.WithMessage("comment not found")
	}
	return nil
}

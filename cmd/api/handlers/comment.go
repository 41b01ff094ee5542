package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	interactionservice "VideoTube.com/cmd/interaction/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
)

type AddCommentParam struct {
	Content string `json:"content" form:"content"`
}

func AddComment(ctx context.Context, c *app.RequestContext) {
	userId, err := AuthUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	videoId, err := PathInt64(c, "video_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param AddCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	if param.Content == "" {
		SendResponse(c, errno.ParamErr.WithMessage("content missing"), nil)
		return
	}

	detail, err := interactionservice.NewCommentService(ctx).CreateComment(userId, videoId, param.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

type ListCommentParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

func ListComments(ctx context.Context, c *app.RequestContext) {
	videoId, err := PathInt64(c, "video_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param ListCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	// 回显规整后的分页参数
	pageNum, pageSize := utils.NormalizePage(param.PageNum, param.PageSize)
	comments, total, err := interactionservice.NewCommentService(ctx).ListComments(videoId, pageNum, pageSize)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, PageData{
		Items:    comments,
		Total:    total,
		PageNum:  pageNum,
		PageSize: pageSize,
	})
}

type UpdateCommentParam struct {
	Content string `json:"content" form:"content"`
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := PathInt64(c, "comment_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param UpdateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	if param.Content == "" {
		SendResponse(c, errno.ParamErr.WithMessage("content missing"), nil)
		return
	}

	comment, err := interactionservice.NewCommentService(ctx).UpdateComment(commentId, param.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := PathInt64(c, "comment_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err := interactionservice.NewCommentService(ctx).DeleteComment(commentId); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

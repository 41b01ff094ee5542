package service

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/oss"
	"VideoTube.com/pkg/utils"
)

type VideoService struct {
	ctx context.Context
}

func NewVideoService(ctx context.Context) *VideoService {
	return &VideoService{ctx: ctx}
}

type ListVideosRequest struct {
	UserId   int64
	Query    string
	SortBy   string
	SortType string
	PageNum  int64
	PageSize int64
}

// ListVideos 按作者检索视频 标题/描述子串匹配 返回列表和总数
func (s *VideoService) ListVideos(req *ListVideosRequest) ([]*model.VideoDetail, int64, error) {
	owner, err := db.GetUserById(s.ctx, req.UserId)
	if err != nil {
		return nil, 0, err
	}

	pageNum, pageSize := utils.NormalizePage(req.PageNum, req.PageSize)
	videos, count, err := db.QueryVideos(s.ctx, req.UserId, req.Query, req.SortBy, req.SortType, pageNum, pageSize)
	if err != nil {
		return nil, 0, err
	}

	details := make([]*model.VideoDetail, 0, len(videos))
	summary := owner.Summary()
	for _, v := range videos {
		details = append(details, &model.VideoDetail{Video: *v, Owner: summary})
	}
	return details, count, nil
}

type PublishVideoRequest struct {
	UserId        int64
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// PublishVideo 探测时长 上传视频和封面到对象存储 再落库
// 未提供封面时抽视频首帧生成
func (s *VideoService) PublishVideo(req *PublishVideoRequest) (*model.VideoDetail, error) {
	duration, err := utils.GetVideoDuration(req.VideoPath)
	if err != nil {
		return nil, errno.ParamErr.WithMessage("unable to read duration from video file")
	}

	videoId := utils.NewID()
	thumbnailPath := req.ThumbnailPath
	if thumbnailPath == "" {
		frameDir := filepath.Join(filepath.Dir(req.VideoPath), strconv.FormatInt(videoId, 10))
		generated, err := utils.GetVideoThumbnail(req.VideoPath, frameDir)
		if err != nil {
			hlog.CtxErrorf(s.ctx, "thumbnail generation failed: %v", err)
			return nil, errno.ParamErr.WithMessage("unable to generate thumbnail from video file")
		}
		defer os.RemoveAll(frameDir)
		thumbnailPath = generated
	}

	videoUrl, err := oss.UploadVideo(s.ctx, req.VideoPath, videoId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "video upload failed: %v", err)
		return nil, errno.StorageErr.WithMessage("video upload failed")
	}
	coverUrl, err := oss.UploadThumbnail(s.ctx, thumbnailPath, videoId, uuid.New().String())
	if err != nil {
		hlog.CtxErrorf(s.ctx, "thumbnail upload failed: %v", err)
		return nil, errno.StorageErr.WithMessage("thumbnail upload failed")
	}

	video := &model.Video{
		VideoId:     videoId,
		UserId:      req.UserId,
		Title:       req.Title,
		Description: req.Description,
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		Duration:    duration,
		ViewCount:   0,
		IsPublished: true,
	}
	if err := db.InsertVideo(s.ctx, video); err != nil {
		return nil, err
	}

	owner, err := db.GetUserById(s.ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	return &model.VideoDetail{Video: *video, Owner: owner.Summary()}, nil
}

// GetVideo 单视频详情 连同作者投影 播放数原子+1
func (s *VideoService) GetVideo(videoId int64) (*model.VideoDetail, error) {
	if err := db.AddVideoViewCount(s.ctx, videoId); err != nil {
		hlog.CtxWarnf(s.ctx, "view count bump failed: %v", err)
	}

	if detail := cache.GetVideoInfo(s.ctx, videoId); detail != nil {
		return detail, nil
	}

	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, err
	}
	owner, err := db.GetUserById(s.ctx, video.UserId)
	if err != nil {
		return nil, err
	}

	detail := &model.VideoDetail{Video: *video, Owner: owner.Summary()}
	cache.SetVideoInfo(s.ctx, detail)
	return detail, nil
}

type UpdateVideoRequest struct {
	VideoId       int64
	Title         string
	Description   string
	ThumbnailPath string
}

// UpdateVideo 换封面时必须先删旧对象 删除失败则整个更新中止
func (s *VideoService) UpdateVideo(req *UpdateVideoRequest) (*model.VideoDetail, error) {
	video, err := db.GetVideo(s.ctx, req.VideoId)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}

	if req.ThumbnailPath != "" {
		if err := oss.DeleteByURL(s.ctx, video.CoverUrl, oss.ResourceKindImage); err != nil {
			hlog.CtxErrorf(s.ctx, "old thumbnail deletion failed: %v", err)
			return nil, errno.StorageErr.WithMessage("failed to delete old thumbnail")
		}
		coverUrl, err := oss.UploadThumbnail(s.ctx, req.ThumbnailPath, req.VideoId, uuid.New().String())
		if err != nil {
			hlog.CtxErrorf(s.ctx, "thumbnail upload failed: %v", err)
			return nil, errno.StorageErr.WithMessage("thumbnail upload failed")
		}
		updates["cover_url"] = coverUrl
	}

	if len(updates) == 0 {
		return nil, errno.ParamErr.WithMessage("nothing to update")
	}
	if _, err := db.UpdateVideoInfo(s.ctx, req.VideoId, updates); err != nil {
		return nil, err
	}
	cache.DelVideoInfo(s.ctx, req.VideoId)

	updated, err := db.GetVideo(s.ctx, req.VideoId)
	if err != nil {
		return nil, err
	}
	owner, err := db.GetUserById(s.ctx, updated.UserId)
	if err != nil {
		return nil, err
	}
	return &model.VideoDetail{Video: *updated, Owner: owner.Summary()}, nil
}

// DeleteVideo 任一对象删除失败都要在删库前中止 不留缺资产的悬挂记录
func (s *VideoService) DeleteVideo(videoId int64) error {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return err
	}

	if err := oss.DeleteByURL(s.ctx, video.VideoUrl, oss.ResourceKindVideo); err != nil {
		hlog.CtxErrorf(s.ctx, "video object deletion failed: %v", err)
		return errno.StorageErr.WithMessage("failed to delete video file")
	}
	if err := oss.DeleteByURL(s.ctx, video.CoverUrl, oss.ResourceKindImage); err != nil {
		hlog.CtxErrorf(s.ctx, "thumbnail object deletion failed: %v", err)
		return errno.StorageErr.WithMessage("failed to delete thumbnail")
	}

	rows, err := db.DeleteVideo(s.ctx, videoId)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.WithMessage(errno.RecordNotFoundErr, "video already gone")
	}
	cache.DelVideoInfo(s.ctx, videoId)
	return nil
}

// TogglePublish 库内单条UPDATE取反发布位 返回翻转后的状态
func (s *VideoService) TogglePublish(videoId int64) (bool, error) {
	rows, err := db.TogglePublish(s.ctx, videoId)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, errno.RecordNotFoundErr.WithMessage("video not found")
	}
	cache.DelVideoInfo(s.ctx, videoId)

	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return false, err
	}
	return video.IsPublished, nil
}

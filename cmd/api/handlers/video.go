package handlers

import (
	"context"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"

	videoservice "VideoTube.com/cmd/video/service"
	"VideoTube.com/config"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
)

type ListVideosParam struct {
	UserId   int64  `query:"user_id"`
	Query    string `query:"query"`
	SortBy   string `query:"sort_by"`
	SortType string `query:"sort_type"`
	PageNum  int64  `query:"page_num"`
	PageSize int64  `query:"page_size"`
}

func ListVideos(ctx context.Context, c *app.RequestContext) {
	var param ListVideosParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	if param.UserId <= 0 {
		SendResponse(c, errno.ParamErr.WithMessage("user_id missing"), nil)
		return
	}

	// 响应里回显的是规整后的分页参数 和实际取数窗口一致
	pageNum, pageSize := utils.NormalizePage(param.PageNum, param.PageSize)
	videos, total, err := videoservice.NewVideoService(ctx).ListVideos(&videoservice.ListVideosRequest{
		UserId:   param.UserId,
		Query:    param.Query,
		SortBy:   param.SortBy,
		SortType: param.SortType,
		PageNum:  pageNum,
		PageSize: pageSize,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, PageData{
		Items:    videos,
		Total:    total,
		PageNum:  pageNum,
		PageSize: pageSize,
	})
}

type PublishVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// PublishVideo 接收multipart上传 视频和封面缺一不可
func PublishVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := AuthUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}

	var param PublishVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	if param.Title == "" {
		SendResponse(c, errno.ParamErr.WithMessage("title missing"), nil)
		return
	}

	videoFile, err := c.FormFile("video_file")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("video file missing"), nil)
		return
	}

	videoPath, err := stageUploadedFile(c, videoFile)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	defer os.Remove(videoPath)

	// 封面可选 缺省时由service抽视频首帧兜底
	var thumbnailPath string
	if thumbnail, err := c.FormFile("thumbnail"); err == nil {
		if thumbnailPath, err = stageUploadedFile(c, thumbnail); err != nil {
			SendResponse(c, err, nil)
			return
		}
		defer os.Remove(thumbnailPath)
	}

	detail, err := videoservice.NewVideoService(ctx).PublishVideo(&videoservice.PublishVideoRequest{
		UserId:        userId,
		Title:         param.Title,
		Description:   param.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := PathInt64(c, "video_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	detail, err := videoservice.NewVideoService(ctx).GetVideo(videoId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

type UpdateVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := PathInt64(c, "video_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param UpdateVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	// 封面可选 带了就走先删后传的替换流程
	var thumbnailPath string
	if thumbnail, err := c.FormFile("thumbnail"); err == nil {
		if thumbnailPath, err = stageUploadedFile(c, thumbnail); err != nil {
			SendResponse(c, err, nil)
			return
		}
		defer os.Remove(thumbnailPath)
	}

	detail, err := videoservice.NewVideoService(ctx).UpdateVideo(&videoservice.UpdateVideoRequest{
		VideoId:       videoId,
		Title:         param.Title,
		Description:   param.Description,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := PathInt64(c, "video_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err := videoservice.NewVideoService(ctx).DeleteVideo(videoId); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func TogglePublishStatus(ctx context.Context, c *app.RequestContext) {
	videoId, err := PathInt64(c, "video_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	isPublished, err := videoservice.NewVideoService(ctx).TogglePublish(videoId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"is_published": isPublished})
}

// stageUploadedFile 把上传文件落到暂存目录 控制器读完即删
func stageUploadedFile(c *app.RequestContext, file *multipart.FileHeader) (string, error) {
	stageDir := config.ConfigInfo.Server.UploadStagePath
	if err := os.MkdirAll(stageDir, os.ModePerm); err != nil {
		return "", errno.ServiceErr.WithMessage("failed to create staging directory")
	}
	path := filepath.Join(stageDir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		hlog.Errorf("failed to stage uploaded file: %v", err)
		return "", errno.ServiceErr.WithMessage("failed to stage uploaded file")
	}
	return path, nil
}

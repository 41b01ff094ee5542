package oss

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"VideoTube.com/config"
)

// 资源类型提示 删除时用于定位存储桶
const (
	ResourceKindVideo = "video"
	ResourceKindImage = "image"
)

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{
			Region: config.ConfigInfo.Minio.BucketLocation,
		})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

func publicURL(bucketName, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicBaseURL, bucketName, objectName)
}

// UploadVideo 上传视频文件 返回可访问的URL
func UploadVideo(ctx context.Context, path string, vid int64) (string, error) {
	bucketName := config.ConfigInfo.Minio.VideoBucket
	objectName := fmt.Sprintf("video/%d/video.mp4", vid)

	if err := ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}
	_, err := minioClient.FPutObject(ctx, bucketName, objectName, path,
		minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		return "", errors.WithMessage(err, "Failed to upload video")
	}
	return publicURL(bucketName, objectName), nil
}

// UploadThumbnail 上传封面图 suffix带uuid避免新旧封面同键
func UploadThumbnail(ctx context.Context, path string, vid int64, name string) (string, error) {
	bucketName := config.ConfigInfo.Minio.PictureBucket
	objectName := fmt.Sprintf("thumbnail/%d/%s.jpg", vid, name)

	if err := ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}
	_, err := minioClient.FPutObject(ctx, bucketName, objectName, path,
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		return "", errors.WithMessage(err, "Failed to upload thumbnail")
	}
	return publicURL(bucketName, objectName), nil
}

// DeleteByURL 根据资源URL和类型提示删除对象
// 删除失败必须让调用方感知 视频删除流程依赖它决定是否继续删库
func DeleteByURL(ctx context.Context, rawURL, kind string) error {
	var bucketName string
	switch kind {
	case ResourceKindVideo:
		bucketName = config.ConfigInfo.Minio.VideoBucket
	case ResourceKindImage:
		bucketName = config.ConfigInfo.Minio.PictureBucket
	default:
		return errors.Errorf("unknown resource kind: %s", kind)
	}

	objectName, err := ObjectNameFromURL(rawURL, bucketName)
	if err != nil {
		return err
	}
	if err := minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return errors.WithMessagef(err, "Failed to delete %s", objectName)
	}
	return nil
}

// ObjectNameFromURL 从公开URL中提取对象键
func ObjectNameFromURL(rawURL, bucketName string) (string, error) {
	prefix := fmt.Sprintf("%s/%s/", config.ConfigInfo.Minio.PublicBaseURL, bucketName)
	if !strings.HasPrefix(rawURL, prefix) {
		return "", errors.Errorf("url %q does not belong to bucket %s", rawURL, bucketName)
	}
	objectName := strings.TrimPrefix(rawURL, prefix)
	if objectName == "" {
		return "", errors.Errorf("empty object name in url %q", rawURL)
	}
	return objectName, nil
}

package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// GetVideoDuration 探测媒体文件时长(秒)
func GetVideoDuration(videoPath string) (float64, error) {
	probe, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to probe video file")
	}
	duration := gjson.Get(probe, "format.duration")
	if !duration.Exists() {
		return 0, errors.New("no duration in probe result")
	}
	return duration.Float(), nil
}

func GetVideoThumbnail(videoPath, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return "", errors.WithMessage(err, "Failed to create folders")
	}
	outputPath := filepath.Join(outputDir, "thumbnail.jpg")
	err := ffmpeg.Input(videoPath).
		Output(outputPath, ffmpeg.KwArgs{
			"ss":      "00:00:00",
			"vframes": "1",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return "", errors.WithMessage(err, "Failed to generate the thumbnail")
	}
	return outputPath, nil
}

package oss

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"VideoTube.com/config"
)

func TestObjectNameFromURL(t *testing.T) {
	config.ConfigInfo.Minio.PublicBaseURL = "http://localhost:9000"

	name, err := ObjectNameFromURL("http://localhost:9000/video/video/42/video.mp4", "video")
	assert.NoError(t, err)
	assert.Equal(t, "video/42/video.mp4", name)

	_, err = ObjectNameFromURL("http://other-host/video/video/42/video.mp4", "video")
	assert.Error(t, err)

	_, err = ObjectNameFromURL("http://localhost:9000/video/", "video")
	assert.Error(t, err)
}

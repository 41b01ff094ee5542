package oss

import (
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"VideoTube.com/config"
)

var minioClient *minio.Client

func InitMinio() error {
	conf := config.ConfigInfo.Minio

	hlog.Infof("Initializing MinIO client with endpoint: %s", conf.Endpoint)

	var err error
	minioClient, err = minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return err
	}

	hlog.Info("Connect Minio Success")
	return nil
}

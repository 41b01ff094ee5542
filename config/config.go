package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// Init 读取配置文件并填充全局配置 环境变量优先于配置文件中的敏感项
func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	configPaths := []string{
		"./config",
		"../config",
		"../../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
			return
		}
	} else {
		logrus.Infof("loaded config file: %s", viper.ConfigFileUsed())
	}

	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.MaxRequestBody = viper.GetInt("server.max_request_body")
	ConfigInfo.Server.UploadStagePath = viper.GetString("server.upload_stage_path")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = envOr("MYSQL_PASSWORD", viper.GetString("mysql.password"))
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = envOr("REDIS_PASSWORD", viper.GetString("redis.password"))
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.Minio.Endpoint = viper.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = envOr("MINIO_ACCESS_KEY", viper.GetString("minio.access_key"))
	ConfigInfo.Minio.SecretKey = envOr("MINIO_SECRET_KEY", viper.GetString("minio.secret_key"))
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")
	ConfigInfo.Minio.VideoBucket = viper.GetString("minio.video_bucket")
	ConfigInfo.Minio.PictureBucket = viper.GetString("minio.picture_bucket")
	ConfigInfo.Minio.PublicBaseURL = viper.GetString("minio.public_base_url")
	ConfigInfo.Minio.BucketLocation = viper.GetString("minio.bucket_location")

	ConfigInfo.Jwt.Secret = envOr("JWT_SECRET", viper.GetString("jwt.secret"))
	ConfigInfo.Jwt.Issuer = viper.GetString("jwt.issuer")

	logrus.Infof("config loaded - mysql: %s@%s/%s minio: %s",
		ConfigInfo.Mysql.Username, ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database,
		ConfigInfo.Minio.Endpoint)
}

func setDefaults() {
	viper.SetDefault("server.addr", "0.0.0.0:8888")
	viper.SetDefault("server.max_request_body", 1024*1024*1024)
	viper.SetDefault("server.upload_stage_path", "./uploads")
	viper.SetDefault("mysql.addr", "localhost:3306")
	viper.SetDefault("mysql.database", "videotube")
	viper.SetDefault("mysql.username", "root")
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.video_bucket", "video")
	viper.SetDefault("minio.picture_bucket", "picture")
	viper.SetDefault("minio.public_base_url", "http://localhost:9000")
	viper.SetDefault("minio.bucket_location", "us-east-1")
	viper.SetDefault("jwt.issuer", "videotube")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

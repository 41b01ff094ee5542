package config

type config struct {
	Server server `yaml:"server" mapstructure:"server"`
	Mysql  mysql  `yaml:"mysql" mapstructure:"mysql"`
	Redis  redis  `yaml:"redis" mapstructure:"redis"`
	Minio  minio  `yaml:"minio" mapstructure:"minio"`
	Jwt    jwt    `yaml:"jwt" mapstructure:"jwt"`
}

type server struct {
	Addr            string `yaml:"addr"`
	MaxRequestBody  int    `yaml:"max_request_body"`
	UploadStagePath string `yaml:"upload_stage_path"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type minio struct {
	Endpoint       string `yaml:"endpoint"`
	AccessKey      string `yaml:"access_key"`
	SecretKey      string `yaml:"secret_key"`
	UseSSL         bool   `yaml:"use_ssl"`
	VideoBucket    string `yaml:"video_bucket"`
	PictureBucket  string `yaml:"picture_bucket"`
	PublicBaseURL  string `yaml:"public_base_url"`
	BucketLocation string `yaml:"bucket_location"`
}

type jwt struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
}

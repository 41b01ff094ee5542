package db

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"VideoTube.com/cmd/model"
	"VideoTube.com/config"
)

var DB *gorm.DB

// Init init DB
func Init() {
	var err error
	dsn := config.ConfigInfo.Mysql.Username + ":" + config.ConfigInfo.Mysql.Password +
		"@tcp(" + config.ConfigInfo.Mysql.Addr + ")/" + config.ConfigInfo.Mysql.Database +
		"?charset=" + config.ConfigInfo.Mysql.Charset + "&parseTime=True&loc=Local"
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		panic(err)
	}

	// users表归认证系统所有 不在这里迁移
	if err = DB.AutoMigrate(
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Tweet{},
		&model.Playlist{},
		&model.PlaylistVideo{},
		&model.Subscription{},
	); err != nil {
		panic(err)
	}
}

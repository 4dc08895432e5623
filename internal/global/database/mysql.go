package database

import (
	"fmt"

	"lab-website-system/config"
	"lab-website-system/internal/model"
	"lab-website-system/tools"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

// autoMigrateModels 需要自动迁移的模型列表
var autoMigrateModels = []any{
	&model.User{},
	&model.Paper{},
	&model.Conference{},
	&model.Notice{},
	&model.NoticeAttachment{},
	&model.GalleryPost{},
	&model.GalleryImage{},
}

func Init() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.Get().Mysql.Username,
		config.Get().Mysql.Password,
		config.Get().Mysql.Host,
		config.Get().Mysql.Port,
		config.Get().Mysql.DBName,
	)
	// 相册与封面互相引用，外键约束交给业务层显式级联处理。
	// TranslateError 让唯一索引冲突以 gorm.ErrDuplicatedKey 暴露。
	gormConfig := &gorm.Config{
		NamingStrategy:                           schema.NamingStrategy{SingularTable: true},
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	}

	switch config.Get().Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	tools.PanicOnErr(err)
	DB = db

	tools.PanicOnErr(DB.AutoMigrate(autoMigrateModels...))
}

// AutoMigrate 供测试用的迁移入口，使用与 Init 相同的模型列表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(autoMigrateModels...)
}

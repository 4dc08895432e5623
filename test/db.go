package test

import (
	"testing"

	"lab-website-system/internal/global/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// SetupDB 用内存 sqlite 替换全局 DB，表结构与生产迁移一致。
// 级联删除由业务代码显式执行，不依赖数据库外键，迁移时跳过约束。
func SetupDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy:                           schema.NamingStrategy{SingularTable: true},
		Logger:                                   gormlogger.Discard,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	database.DB = db
}

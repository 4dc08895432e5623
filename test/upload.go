package test

import (
	"testing"

	"lab-website-system/config"
	"lab-website-system/internal/global/upload"
)

// SetupUpload 把上传目录指向测试临时目录，禁用对象存储
func SetupUpload(t *testing.T) string {
	dir := t.TempDir()
	cfg := config.Get()
	cfg.Storage.Home = dir
	cfg.Storage.BaseURL = ""
	cfg.S3.Bucket = ""
	upload.Init()
	return dir
}

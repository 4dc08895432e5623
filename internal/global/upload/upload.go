package upload

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"lab-website-system/config"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDisallowedType 扩展名不在允许列表内
var ErrDisallowedType = errors.New("disallowed file type")

// allowedExts 允许上传的扩展名（图片 + PDF）
var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
}

// Store 文件存储：默认落本地磁盘，配置了 S3 时写远端对象存储
type Store struct {
	SaveDir string
	BaseURL string

	s3 s3Backend
}

var defaultStore *Store

func Init() {
	cfg := config.Get()
	defaultStore = &Store{
		SaveDir: cfg.Storage.Home,
		BaseURL: cfg.Storage.BaseURL,
	}
	if cfg.S3.Bucket != "" {
		defaultStore.s3.init(cfg.S3)
	}
}

// Default 获取全局存储实例
func Default() *Store {
	if defaultStore == nil {
		Init()
	}
	return defaultStore
}

// Allowed 检查文件名扩展是否在允许列表内
func Allowed(filename string) bool {
	return allowedExts[strings.ToLower(filepath.Ext(filename))]
}

// randomName 生成防碰撞、防路径猜测的文件名，保留扩展名
func randomName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return strings.ReplaceAll(uuid.NewString(), "-", "") + ext
}

// Save 校验并保存上传文件，图片超限时先缩放压缩。
// 返回 DB 中保存的引用：本地为相对路径（gallery/xxx.jpg），S3 为完整 URL。
func (s *Store) Save(ctx context.Context, fh *multipart.FileHeader, subdir string) (string, error) {
	if !Allowed(fh.Filename) {
		return "", errors.WithStack(ErrDisallowedType)
	}

	file, err := fh.Open()
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", errors.WithStack(err)
	}

	name := randomName(fh.Filename)
	ext := strings.ToLower(filepath.Ext(name))

	// PDF 原样保存，图片走缩放压缩管线
	if ext != ".pdf" {
		var newExt string
		data, newExt, err = processImage(data, ext)
		if err != nil {
			return "", err
		}
		if newExt != ext {
			name = strings.TrimSuffix(name, ext) + newExt
			ext = newExt
		}
	}

	rel := path.Join(subdir, name)

	if s.s3.enabled() {
		return s.s3.put(ctx, rel, data, mime.TypeByExtension(ext))
	}

	outDir := filepath.Join(s.SaveDir, subdir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", errors.WithStack(err)
	}
	if err := os.WriteFile(filepath.Join(s.SaveDir, rel), data, 0o644); err != nil {
		return "", errors.WithStack(err)
	}
	return rel, nil
}

// Delete 删除存储的文件；引用可以是本地相对路径或 S3 URL
func (s *Store) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return s.s3.deleteByURL(ctx, ref)
	}
	err := os.Remove(filepath.Join(s.SaveDir, ref))
	if err != nil && !os.IsNotExist(err) {
		return errors.WithStack(err)
	}
	return nil
}

// RemoveDir 删除整个上传子目录（公告删除时清理 notices/notice_<id>/）
func (s *Store) RemoveDir(subdir string) error {
	if subdir == "" || subdir == "." {
		return nil
	}
	return os.RemoveAll(filepath.Join(s.SaveDir, subdir))
}

package upload_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lab-website-system/internal/global/upload"
	"lab-website-system/test"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

// fileHeader 构造一个内存中的 multipart 文件
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(64 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

// encodePNG 生成指定尺寸的 PNG 测试图
func encodePNG(t *testing.T, width, height int) []byte {
	img := imaging.New(width, height, colornames.Steelblue)
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func TestAllowed(t *testing.T) {
	require.True(t, upload.Allowed("a.png"))
	require.True(t, upload.Allowed("b.JPG"))
	require.True(t, upload.Allowed("c.webp"))
	require.True(t, upload.Allowed("report.pdf"))

	require.False(t, upload.Allowed("evil.exe"))
	require.False(t, upload.Allowed("noext"))
	require.False(t, upload.Allowed("archive.tar.gz"))
}

func TestSaveRejectsDisallowedType(t *testing.T) {
	dir := test.SetupUpload(t)

	fh := fileHeader(t, "evil.exe", []byte("MZ"))
	_, err := upload.Default().Save(context.Background(), fh, "gallery")
	require.True(t, errors.Is(err, upload.ErrDisallowedType))

	// 拒绝发生在任何磁盘写入之前
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	require.Empty(t, entries)
}

func TestSaveSmallImageVerbatim(t *testing.T) {
	dir := test.SetupUpload(t)
	content := encodePNG(t, 120, 80)

	ref, err := upload.Default().Save(context.Background(), fileHeader(t, "photo.png", content), "gallery")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(ref, "gallery/"))
	require.Equal(t, ".png", filepath.Ext(ref))

	// 边长未超限的图片原样保存
	saved, err := os.ReadFile(filepath.Join(dir, ref))
	require.NoError(t, err)
	require.Equal(t, content, saved)
}

func TestSaveLargeImageResized(t *testing.T) {
	dir := test.SetupUpload(t)
	content := encodePNG(t, 4000, 1000)

	ref, err := upload.Default().Save(context.Background(), fileHeader(t, "wide.png", content), "gallery")
	require.NoError(t, err)

	img, err := imaging.Open(filepath.Join(dir, ref))
	require.NoError(t, err)
	bounds := img.Bounds()
	require.Equal(t, 2000, bounds.Dx())
	require.Equal(t, 500, bounds.Dy())
}

func TestSavePDFUntouched(t *testing.T) {
	dir := test.SetupUpload(t)
	content := []byte("%PDF-1.4 fake document")

	ref, err := upload.Default().Save(context.Background(), fileHeader(t, "paper.pdf", content), "notices/notice_1")
	require.NoError(t, err)
	require.Equal(t, ".pdf", filepath.Ext(ref))

	saved, err := os.ReadFile(filepath.Join(dir, ref))
	require.NoError(t, err)
	require.Equal(t, content, saved)
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	test.SetupUpload(t)
	content := encodePNG(t, 10, 10)

	first, err := upload.Default().Save(context.Background(), fileHeader(t, "same.png", content), "gallery")
	require.NoError(t, err)
	second, err := upload.Default().Save(context.Background(), fileHeader(t, "same.png", content), "gallery")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	// 原始文件名不出现在存储引用中
	require.NotContains(t, first, "same")
}

func TestDelete(t *testing.T) {
	dir := test.SetupUpload(t)
	store := upload.Default()

	ref, err := store.Save(context.Background(), fileHeader(t, "gone.png", encodePNG(t, 10, 10)), "gallery")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, ref))

	require.NoError(t, store.Delete(context.Background(), ref))
	require.NoFileExists(t, filepath.Join(dir, ref))

	// 重复删除与空引用都不报错
	require.NoError(t, store.Delete(context.Background(), ref))
	require.NoError(t, store.Delete(context.Background(), ""))
}

func TestRemoveDir(t *testing.T) {
	dir := test.SetupUpload(t)
	store := upload.Default()

	_, err := store.Save(context.Background(), fileHeader(t, "a.png", encodePNG(t, 10, 10)), "notices/notice_7")
	require.NoError(t, err)

	require.NoError(t, store.RemoveDir("notices/notice_7"))
	require.NoDirExists(t, filepath.Join(dir, "notices/notice_7"))
}

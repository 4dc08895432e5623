package notice

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lab-website-system/internal/global/database"
	"lab-website-system/internal/global/response"
	"lab-website-system/internal/model"
	"lab-website-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	(&ModuleNotice{}).Init()
	os.Exit(m.Run())
}

// pngBytes 编码生成的 1x1 PNG，避免测试依赖真实图片文件
var pngBytes = func() []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		panic(err)
	}
	return buf.Bytes()
}()

func createNotice(t *testing.T, title, content string, files []test.FormFile) uint {
	resp := test.DoMultipart(t, CreateNotice, map[string]string{
		"title":   title,
		"content": content,
	}, files)
	test.NoError(t, resp)

	var data struct {
		NoticeID uint `json:"notice_id"`
	}
	test.DecodeData(t, resp, &data)
	return data.NoticeID
}

func TestCreateNoticeWithAttachments(t *testing.T) {
	test.SetupDB(t)
	dir := test.SetupUpload(t)

	id := createNotice(t, "Maintenance", "Server will be down.", []test.FormFile{
		{Field: "files", Filename: "a.pdf", Content: []byte("%PDF-1.4 doc")},
		{Field: "files", Filename: "b.png", Content: pngBytes},
	})

	var notice model.Notice
	require.NoError(t, database.DB.Preload("Attachments").First(&notice, id).Error)
	require.Equal(t, "Maintenance", notice.Title)
	require.Len(t, notice.Attachments, 2)

	for _, att := range notice.Attachments {
		require.True(t, strings.HasPrefix(att.Filename, noticeSubdir(id)+"/"))
		require.FileExists(t, filepath.Join(dir, att.Filename))
	}
}

func TestCreateNoticeRejectsDisallowedFile(t *testing.T) {
	test.SetupDB(t)
	dir := test.SetupUpload(t)

	resp := test.DoMultipart(t, CreateNotice, map[string]string{
		"title":   "bad",
		"content": "bad",
	}, []test.FormFile{
		{Field: "files", Filename: "ok.png", Content: pngBytes},
		{Field: "files", Filename: "evil.exe", Content: []byte("MZ")},
	})
	test.CodeEqual(t, response.ErrFileType, resp)

	// 任何非法附件让整个请求失败，不落库不落盘
	var count int64
	require.NoError(t, database.DB.Model(&model.Notice{}).Count(&count).Error)
	require.EqualValues(t, 0, count)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestCreateNoticeRequiresTitleAndContent(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoMultipart(t, CreateNotice, map[string]string{"title": "only"}, nil)
	test.CodeEqual(t, response.ErrInvalidRequest, resp)
}

func TestGetNoticeIncrementsViewCount(t *testing.T) {
	test.SetupDB(t)
	test.SetupUpload(t)
	id := createNotice(t, "News", "content", nil)
	param := gin.Param{Key: "id", Value: "1"}

	first := test.DoGet(t, GetNotice, "", param)
	test.NoError(t, first)
	var got model.Notice
	test.DecodeData(t, first, &got)
	require.Equal(t, 1, got.ViewCount)

	second := test.DoGet(t, GetNotice, "", param)
	test.NoError(t, second)
	test.DecodeData(t, second, &got)
	require.Equal(t, 2, got.ViewCount)

	var stored model.Notice
	require.NoError(t, database.DB.First(&stored, id).Error)
	require.Equal(t, 2, stored.ViewCount)
}

func TestGetNoticeNotFound(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoGet(t, GetNotice, "", gin.Param{Key: "id", Value: "99"})
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestEditNotice(t *testing.T) {
	test.SetupDB(t)
	dir := test.SetupUpload(t)
	id := createNotice(t, "Old", "old content", []test.FormFile{
		{Field: "files", Filename: "old.pdf", Content: []byte("%PDF-1.4 old")},
	})

	var before model.Notice
	require.NoError(t, database.DB.Preload("Attachments").First(&before, id).Error)
	require.Len(t, before.Attachments, 1)
	removedRef := before.Attachments[0].Filename

	resp := test.DoMultipart(t, EditNotice, map[string]string{
		"title":              "New",
		"content":            "new content",
		"delete_attachments": "1",
	}, []test.FormFile{
		{Field: "files", Filename: "new.png", Content: pngBytes},
	}, gin.Param{Key: "id", Value: "1"})
	test.NoError(t, resp)

	var after model.Notice
	require.NoError(t, database.DB.Preload("Attachments").First(&after, id).Error)
	require.Equal(t, "New", after.Title)
	require.Equal(t, "new content", after.Content)
	require.Len(t, after.Attachments, 1)
	require.NotEqual(t, removedRef, after.Attachments[0].Filename)

	// 被删附件的文件同步清理，新附件落盘
	require.NoFileExists(t, filepath.Join(dir, removedRef))
	require.FileExists(t, filepath.Join(dir, after.Attachments[0].Filename))
}

func TestDownloadAttachment(t *testing.T) {
	test.SetupDB(t)
	test.SetupUpload(t)
	createNotice(t, "Docs", "content", []test.FormFile{
		{Field: "files", Filename: "a.pdf", Content: []byte("%PDF-1.4 doc")},
	})

	w := test.DoRaw(t, DownloadAttachment, "GET", nil, gin.Param{Key: "id", Value: "1"})
	require.Equal(t, 200, w.Code)
	require.Equal(t, []byte("%PDF-1.4 doc"), w.Body.Bytes())
	require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
}

func TestDownloadAttachmentNotFound(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoGet(t, DownloadAttachment, "", gin.Param{Key: "id", Value: "5"})
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestDeleteNoticeCascades(t *testing.T) {
	test.SetupDB(t)
	dir := test.SetupUpload(t)
	id := createNotice(t, "Doomed", "content", []test.FormFile{
		{Field: "files", Filename: "a.pdf", Content: []byte("%PDF-1.4 a")},
		{Field: "files", Filename: "b.png", Content: pngBytes},
	})

	resp := test.DoGet(t, DeleteNotice, "", gin.Param{Key: "id", Value: "1"})
	test.NoError(t, resp)

	var noticeCount, attachmentCount int64
	require.NoError(t, database.DB.Model(&model.Notice{}).Count(&noticeCount).Error)
	require.NoError(t, database.DB.Model(&model.NoticeAttachment{}).Count(&attachmentCount).Error)
	require.EqualValues(t, 0, noticeCount)
	require.EqualValues(t, 0, attachmentCount)

	require.NoDirExists(t, filepath.Join(dir, noticeSubdir(id)))

	again := test.DoGet(t, GetNotice, "", gin.Param{Key: "id", Value: "1"})
	test.ErrorEqual(t, response.ErrNotFound, again)
}

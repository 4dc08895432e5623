package notice

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"lab-website-system/internal/global/database"
	"lab-website-system/internal/global/response"
	"lab-website-system/internal/global/upload"
	"lab-website-system/internal/model"
	"lab-website-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DownloadAttachment 下载公告附件；对象存储引用重定向到远端 URL
func DownloadAttachment(c *gin.Context) {
	id := c.Param("id")

	var att model.NoticeAttachment
	if err := database.DB.First(&att, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound)
			return
		}
		log.Error("查询附件失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if strings.HasPrefix(att.Filename, "http://") || strings.HasPrefix(att.Filename, "https://") {
		c.Redirect(http.StatusFound, att.Filename)
		return
	}

	path := filepath.Join(upload.Default().SaveDir, att.Filename)
	if !tools.FileExist(path) {
		log.Warn("附件文件缺失", "id", id, "filename", att.Filename)
		response.Fail(c, response.ErrNotFound)
		return
	}

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(att.Filename)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	tools.SendStoredFile(c, path, filepath.Base(att.Filename), contentType)
}

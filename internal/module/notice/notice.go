package notice

import (
	"fmt"
	"mime/multipart"

	"lab-website-system/internal/global/database"
	"lab-website-system/internal/global/response"
	"lab-website-system/internal/global/upload"
	"lab-website-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noticeSubdir 公告附件的存储子目录
func noticeSubdir(noticeID uint) string {
	return fmt.Sprintf("notices/notice_%d", noticeID)
}

// validateFiles 提前校验全部附件扩展名，保证任何磁盘写入前拒绝非法文件
func validateFiles(files []*multipart.FileHeader) error {
	for _, fh := range files {
		if !upload.Allowed(fh.Filename) {
			return response.ErrFileType.WithTips(fh.Filename)
		}
	}
	return nil
}

// ListNotices 公告列表，按创建时间降序
func ListNotices(c *gin.Context) {
	var notices []model.Notice
	if err := database.DB.Order("created_at DESC").Find(&notices).Error; err != nil {
		log.Error("查询公告列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, notices)
}

// GetNotice 公告详情。
// 阅读计数在同一事务内自增，避免并发浏览丢失更新。
func GetNotice(c *gin.Context) {
	id := c.Param("id")

	var notice model.Notice
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Attachments").First(&notice, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&model.Notice{}).
			Where("id = ?", notice.ID).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound)
			return
		}
		log.Error("查询公告失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notice.ViewCount++
	response.Success(c, notice)
}

// CreateNotice 创建公告（仅管理员，multipart 表单，附件字段 files）
func CreateNotice(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("title and content are required"))
		return
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["files"]
	}
	if err := validateFiles(files); err != nil {
		response.Fail(c, err)
		return
	}

	notice := model.Notice{Title: title, Content: content}
	if err := database.DB.Create(&notice).Error; err != nil {
		log.Error("创建公告失败", "error", err, "title", title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	store := upload.Default()
	for _, fh := range files {
		ref, err := store.Save(c.Request.Context(), fh, noticeSubdir(notice.ID))
		if err != nil {
			log.Error("保存附件失败", "error", err, "notice_id", notice.ID, "filename", fh.Filename)
			response.Fail(c, response.ErrUpload.WithOrigin(err))
			return
		}
		attachment := model.NoticeAttachment{Filename: ref, NoticeID: notice.ID}
		if err := database.DB.Create(&attachment).Error; err != nil {
			log.Error("记录附件失败", "error", err, "notice_id", notice.ID)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	log.Info("公告创建成功", "id", notice.ID, "title", notice.Title, "attachments", len(files))
	response.Success(c, gin.H{
		"notice_id": notice.ID,
	})
}

// EditNotice 编辑公告（仅管理员）：更新标题正文、追加附件、删除勾选的附件
func EditNotice(c *gin.Context) {
	id := c.Param("id")

	var notice model.Notice
	if err := database.DB.First(&notice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound)
			return
		}
		log.Error("查询公告失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("title and content are required"))
		return
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["files"]
	}
	if err := validateFiles(files); err != nil {
		response.Fail(c, err)
		return
	}

	deleteIDs := c.PostFormArray("delete_attachments")

	store := upload.Default()

	// 新附件先落盘，事务失败时留下的孤儿文件按尽力清理处理
	newRefs := make([]string, 0, len(files))
	for _, fh := range files {
		ref, err := store.Save(c.Request.Context(), fh, noticeSubdir(notice.ID))
		if err != nil {
			log.Error("保存附件失败", "error", err, "notice_id", notice.ID, "filename", fh.Filename)
			response.Fail(c, response.ErrUpload.WithOrigin(err))
			return
		}
		newRefs = append(newRefs, ref)
	}

	var removed []model.NoticeAttachment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		notice.Title = title
		notice.Content = content
		if err := tx.Save(&notice).Error; err != nil {
			return err
		}

		for _, ref := range newRefs {
			attachment := model.NoticeAttachment{Filename: ref, NoticeID: notice.ID}
			if err := tx.Create(&attachment).Error; err != nil {
				return err
			}
		}

		if len(deleteIDs) > 0 {
			if err := tx.Where("notice_id = ? AND id IN ?", notice.ID, deleteIDs).
				Find(&removed).Error; err != nil {
				return err
			}
			if len(removed) > 0 {
				if err := tx.Delete(&removed).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Error("更新公告失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	for _, att := range removed {
		if err := store.Delete(c.Request.Context(), att.Filename); err != nil {
			log.Warn("删除附件文件失败", "error", err, "filename", att.Filename)
		}
	}

	log.Info("公告更新成功", "id", notice.ID, "added", len(newRefs), "removed", len(removed))
	response.Success(c)
}

// DeleteNotice 删除公告（仅管理员），级联删除全部附件行与文件
func DeleteNotice(c *gin.Context) {
	id := c.Param("id")

	var notice model.Notice
	if err := database.DB.Preload("Attachments").First(&notice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound)
			return
		}
		log.Error("查询公告失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notice_id = ?", notice.ID).
			Delete(&model.NoticeAttachment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&notice).Error
	})
	if err != nil {
		log.Error("删除公告失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	store := upload.Default()
	for _, att := range notice.Attachments {
		if err := store.Delete(c.Request.Context(), att.Filename); err != nil {
			log.Warn("删除附件文件失败", "error", err, "filename", att.Filename)
		}
	}
	if err := store.RemoveDir(noticeSubdir(notice.ID)); err != nil {
		log.Warn("删除附件目录失败", "error", err, "notice_id", notice.ID)
	}

	log.Info("公告删除成功", "id", notice.ID, "attachments", len(notice.Attachments))
	response.Success(c)
}

package gallery

import (
	"lab-website-system/internal/global/database"
	"lab-website-system/internal/global/response"
	"lab-website-system/internal/global/upload"
	"lab-website-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UploadImage 上传单张图片走处理管线（仅管理员），返回存储引用
func UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("file is required"))
		return
	}

	ref, err := upload.Default().Save(c.Request.Context(), fh, "gallery")
	if err != nil {
		if errors.Is(err, upload.ErrDisallowedType) {
			response.Fail(c, response.ErrFileType.WithTips(fh.Filename))
			return
		}
		log.Error("上传图片失败", "error", err, "filename", fh.Filename)
		response.Fail(c, response.ErrUpload.WithOrigin(err))
		return
	}

	log.Info("图片上传成功", "ref", ref)
	response.Success(c, gin.H{
		"url": ref,
	})
}

// PresignReq 预签名直传请求
type PresignReq struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
}

// PresignUpload 生成 S3 直传预签名（仅管理员，需配置对象存储）
func PresignUpload(c *gin.Context) {
	var req PresignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	resp, err := upload.Default().PresignUpload(c.Request.Context(), "gallery", upload.PresignRequest{
		Filename:    req.Filename,
		ContentType: req.ContentType,
	})
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrDisallowedType):
			response.Fail(c, response.ErrFileType.WithTips(req.Filename))
		case errors.Is(err, upload.ErrS3Disabled):
			response.Fail(c, response.ErrInvalidRequest.WithTips("object storage not configured"))
		default:
			log.Error("生成预签名失败", "error", err, "filename", req.Filename)
			response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		}
		return
	}

	response.Success(c, resp)
}

// DeleteImage 从帖子中删除单张图片（仅管理员），响应 204 空体
func DeleteImage(c *gin.Context) {
	postID := c.Param("post_id")
	imageID := c.Param("image_id")

	var image model.GalleryImage
	err := database.DB.Where("id = ? AND post_id = ?", imageID, postID).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound)
			return
		}
		log.Error("查询图片失败", "error", err, "id", imageID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// 被删图片是封面时先解除引用
		if err := tx.Model(&model.GalleryPost{}).
			Where("id = ? AND thumbnail_id = ?", image.PostID, image.ID).
			Update("thumbnail_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&image).Error
	})
	if err != nil {
		log.Error("删除图片失败", "error", err, "id", imageID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := upload.Default().Delete(c.Request.Context(), image.Filename); err != nil {
		log.Warn("删除图片文件失败", "error", err, "filename", image.Filename)
	}

	log.Info("图片删除成功", "post_id", postID, "image_id", imageID)
	response.NoContent(c)
}

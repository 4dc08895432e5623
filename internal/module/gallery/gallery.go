package gallery

import (
	"time"

	"lab-website-system/internal/global/database"
	"lab-website-system/internal/global/response"
	"lab-website-system/internal/global/upload"
	"lab-website-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ThumbnailRef 封面指定方式：二选一。
// ExistingID 指向帖子已有图片，NewIndex 指向本次请求新增图片的下标。
type ThumbnailRef struct {
	ExistingID *uint `json:"existing_id"`
	NewIndex   *int  `json:"new_index"`
}

// NewImage 新增图片：引用 + 描述
type NewImage struct {
	URL         string `json:"url" binding:"required"`
	Description string `json:"description"`
}

// ListPosts 相册列表，按日期降序，带封面
func ListPosts(c *gin.Context) {
	var posts []model.GalleryPost
	if err := database.DB.Preload("Thumbnail").Order("date DESC").Find(&posts).Error; err != nil {
		log.Error("查询相册列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, posts)
}

// GetPost 相册详情，图片按显示顺序返回
func GetPost(c *gin.Context) {
	id := c.Param("post_id")

	var post model.GalleryPost
	err := database.DB.Preload("Thumbnail").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound)
			return
		}
		log.Error("查询相册失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, post)
}

// CreatePostReq 创建相册请求
type CreatePostReq struct {
	Title     string        `json:"title" binding:"required"`
	Date      string        `json:"date" binding:"required"` // YYYY-MM-DD
	Images    []NewImage    `json:"images"`
	Thumbnail *ThumbnailRef `json:"thumbnail"`
}

// CreatePost 创建相册（仅管理员）。
// 图片行先入库拿到主键，封面外键在同一事务内解析。
func CreatePost(c *gin.Context) {
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建相册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("invalid date, expected YYYY-MM-DD"))
		return
	}

	var post model.GalleryPost
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		post = model.GalleryPost{Title: req.Title, Date: date}
		if err := tx.Create(&post).Error; err != nil {
			return err
		}

		created := make([]model.GalleryImage, 0, len(req.Images))
		for idx, im := range req.Images {
			image := model.GalleryImage{
				Filename:    im.URL,
				Description: im.Description,
				SortOrder:   idx,
				PostID:      post.ID,
			}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
			created = append(created, image)
		}

		// 未指定封面时默认第一张新图
		thumbnail := req.Thumbnail
		if thumbnail == nil && len(created) > 0 {
			zero := 0
			thumbnail = &ThumbnailRef{NewIndex: &zero}
		}
		return resolveThumbnail(tx, &post, created, thumbnail)
	})
	if err != nil {
		var respErr *response.Error
		if errors.As(err, &respErr) {
			response.Fail(c, respErr)
			return
		}
		log.Error("创建相册失败", "error", err, "title", req.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("相册创建成功", "id", post.ID, "title", post.Title, "images", len(req.Images))
	response.Success(c, gin.H{
		"post_id": post.ID,
	})
}

// resolveThumbnail 解析封面引用并更新外键；ExistingID 必须属于该帖子
func resolveThumbnail(tx *gorm.DB, post *model.GalleryPost, created []model.GalleryImage, ref *ThumbnailRef) error {
	if ref == nil {
		return nil
	}
	if (ref.ExistingID == nil) == (ref.NewIndex == nil) {
		return response.ErrInvalidRequest.WithTips("thumbnail must set exactly one of existing_id, new_index")
	}

	var thumbnailID uint
	switch {
	case ref.NewIndex != nil:
		if *ref.NewIndex < 0 || *ref.NewIndex >= len(created) {
			return response.ErrInvalidRequest.WithTips("thumbnail new_index out of range")
		}
		thumbnailID = created[*ref.NewIndex].ID
	case ref.ExistingID != nil:
		var image model.GalleryImage
		err := tx.Where("id = ? AND post_id = ?", *ref.ExistingID, post.ID).First(&image).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ErrInvalidRequest.WithTips("thumbnail image does not belong to this post")
		}
		if err != nil {
			return err
		}
		thumbnailID = image.ID
	}

	post.ThumbnailID = &thumbnailID
	return tx.Model(post).Update("thumbnail_id", thumbnailID).Error
}

// UpdateImage 更新已有图片描述
type UpdateImage struct {
	ID          uint   `json:"id" binding:"required"`
	Description string `json:"description"`
}

// EditPostReq 编辑相册请求：三类操作相互独立
type EditPostReq struct {
	Title        string        `json:"title" binding:"required"`
	Date         string        `json:"date" binding:"required"`
	UpdateImages []UpdateImage `json:"update_images"`
	NewImages    []NewImage    `json:"new_images"`
	Thumbnail    *ThumbnailRef `json:"thumbnail"`
}

// EditPost 编辑相册（仅管理员）：改描述、追加图片、换封面
func EditPost(c *gin.Context) {
	id := c.Param("post_id")

	var post model.GalleryPost
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound)
			return
		}
		log.Error("查询相册失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var req EditPostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定编辑相册请求失败", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("invalid date, expected YYYY-MM-DD"))
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		post.Title = req.Title
		post.Date = date
		if err := tx.Save(&post).Error; err != nil {
			return err
		}

		for _, u := range req.UpdateImages {
			if err := tx.Model(&model.GalleryImage{}).
				Where("id = ? AND post_id = ?", u.ID, post.ID).
				Update("description", u.Description).Error; err != nil {
				return err
			}
		}

		var maxOrder int
		if err := tx.Model(&model.GalleryImage{}).
			Where("post_id = ?", post.ID).
			Select("COALESCE(MAX(sort_order), -1)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}

		created := make([]model.GalleryImage, 0, len(req.NewImages))
		for idx, im := range req.NewImages {
			image := model.GalleryImage{
				Filename:    im.URL,
				Description: im.Description,
				SortOrder:   maxOrder + 1 + idx,
				PostID:      post.ID,
			}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
			created = append(created, image)
		}

		return resolveThumbnail(tx, &post, created, req.Thumbnail)
	})
	if err != nil {
		var respErr *response.Error
		if errors.As(err, &respErr) {
			response.Fail(c, respErr)
			return
		}
		log.Error("编辑相册失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("相册更新成功", "id", post.ID)
	response.Success(c)
}

// DeletePost 删除相册（仅管理员），级联删除图片行与文件
func DeletePost(c *gin.Context) {
	id := c.Param("post_id")

	var post model.GalleryPost
	if err := database.DB.Preload("Images").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound)
			return
		}
		log.Error("查询相册失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// 先解除封面引用，避免删除图片时外键约束失败
		if err := tx.Model(&post).Update("thumbnail_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).
			Delete(&model.GalleryImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		log.Error("删除相册失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	store := upload.Default()
	for _, image := range post.Images {
		if err := store.Delete(c.Request.Context(), image.Filename); err != nil {
			log.Warn("删除图片文件失败", "error", err, "filename", image.Filename)
		}
	}

	log.Info("相册删除成功", "id", post.ID, "images", len(post.Images))
	response.Success(c)
}

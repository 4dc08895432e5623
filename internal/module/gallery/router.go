package gallery

import (
	"lab-website-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleGallery) InitRouter(r *gin.RouterGroup) {
	galleryGroup := r.Group("/gallery")

	galleryGroup.GET("", ListPosts)
	galleryGroup.GET("/:post_id", GetPost)
	galleryGroup.POST("/upload_image", middleware.Auth(true), UploadImage)
	galleryGroup.POST("/presign", middleware.Auth(true), PresignUpload)
	galleryGroup.POST("/create", middleware.Auth(true), CreatePost)
	galleryGroup.POST("/edit/:post_id", middleware.Auth(true), EditPost)
	galleryGroup.POST("/delete_post/:post_id", middleware.Auth(true), DeletePost)
	galleryGroup.POST("/:post_id/delete_image/:image_id", middleware.Auth(true), DeleteImage)
}

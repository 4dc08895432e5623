package notice

import (
	"lab-website-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleNotice) InitRouter(r *gin.RouterGroup) {
	noticeGroup := r.Group("/notice")

	noticeGroup.GET("", ListNotices)
	noticeGroup.GET("/:id", GetNotice)
	noticeGroup.GET("/attachment/:id/download", DownloadAttachment)
	noticeGroup.POST("/create", middleware.Auth(true), CreateNotice)
	noticeGroup.POST("/edit/:id", middleware.Auth(true), EditNotice)
	noticeGroup.POST("/delete/:id", middleware.Auth(true), DeleteNotice)
}

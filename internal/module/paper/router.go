package paper

import (
	"lab-website-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (p *ModulePaper) InitRouter(r *gin.RouterGroup) {
	paperGroup := r.Group("/paper")

	paperGroup.GET("", ListPapers)
	paperGroup.GET("/export", middleware.Auth(true), ExportPapers)
	paperGroup.POST("/create", middleware.Auth(true), CreatePaper)
	paperGroup.POST("/delete/:id", middleware.Auth(true), DeletePaper)
}

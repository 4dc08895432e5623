package conference

import (
	"lab-website-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleConference) InitRouter(r *gin.RouterGroup) {
	conferenceGroup := r.Group("/conference")

	conferenceGroup.GET("", ListConferences)
	conferenceGroup.GET("/export", middleware.Auth(true), ExportConferences)
	conferenceGroup.POST("/create", middleware.Auth(true), CreateConference)
	conferenceGroup.POST("/delete/:id", middleware.Auth(true), DeleteConference)
}

package user

import (
	"lab-website-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	r.POST("/register", Register)
	r.POST("/login", Login)
	r.GET("/logout", middleware.Auth(false), Logout)

	userGroup := r.Group("/user")
	userGroup.GET("/me", middleware.Auth(false), GetMe)
}

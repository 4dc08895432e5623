package module

import (
	"lab-website-system/internal/module/conference"
	"lab-website-system/internal/module/gallery"
	"lab-website-system/internal/module/notice"
	"lab-website-system/internal/module/page"
	"lab-website-system/internal/module/paper"
	"lab-website-system/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&page.ModulePage{},
		&user.ModuleUser{},
		&paper.ModulePaper{},
		&conference.ModuleConference{},
		&notice.ModuleNotice{},
		&gallery.ModuleGallery{},
	})
}

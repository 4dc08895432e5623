package page

import (
	"github.com/gin-gonic/gin"
)

func (m *ModulePage) InitRouter(r *gin.RouterGroup) {
	r.GET("/", Home)
	r.GET("/vision", StaticPage("vision"))
	r.GET("/researchareas", StaticPage("researchareas"))
	r.GET("/professor", StaticPage("professor"))
	r.GET("/current", CurrentMembers)
	r.GET("/alumni", StaticPage("alumni"))
	r.GET("/contact", StaticPage("contact"))
}

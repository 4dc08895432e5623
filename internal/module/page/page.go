package page

import (
	"lab-website-system/internal/global/response"
	"lab-website-system/internal/module/paper"

	"github.com/gin-gonic/gin"
)

// Member 实验室成员条目
type Member struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Photo string `json:"photo"`
}

// members 当前在册成员，照管理员提供的名单维护
var members = []Member{
	{Name: "Dong-Geun Lee", Role: "M.S. Student", Email: "qqwwas1234@gmail.com", Photo: "upload/members/이동근.png"},
	{Name: "Jin-Ho Lee", Role: "M.S. Student", Email: "jinho6606@naver.com", Photo: "upload/members/이진호.png"},
	{Name: "Min-Seo Song", Role: "Undergraduate Student", Email: "minseo7250@gmail.com", Photo: "upload/members/송민서.png"},
	{Name: "Gyu-Min Kim", Role: "Undergraduate Student", Email: "sprtms0814@gmail.com", Photo: "upload/members/김규민.png"},
	{Name: "Jiseon Park", Role: "Undergraduate Student", Email: "a01094670355@gmail.com", Photo: "upload/members/박지선.png"},
	{Name: "Seong-Hun Lee", Role: "Undergraduate Student", Email: "ss2396ss@gmail.com", Photo: "upload/members/이성훈.png"},
	{Name: "Chaehyeon Kim", Role: "Undergraduate Student", Email: "aulife4scarlette@gmail.com", Photo: "upload/members/김채현.png"},
	{Name: "Seoyoung Moon", Role: "Undergraduate Student", Email: "moon84615@gmail.com", Photo: "upload/members/문서영.png"},
	{Name: "Yoonseok Ju", Role: "Undergraduate Student", Email: "jys090799@gmail.com", Photo: "upload/members/주윤석.png"},
	{Name: "Joonhyeok Oh", Role: "Undergraduate Student", Email: "wnsgur011717@gmail.com", Photo: "upload/members/오준혁.png"},
	{Name: "Jonathan", Role: "Undergraduate Student", Email: "alpaomegastartend@gmail.com", Photo: "upload/members/조나단.png"},
	{Name: "Seongmin Kim", Role: "Undergraduate Student", Email: "ksiemomnign@gmail.com", Photo: "upload/members/김성민.png"},
	{Name: "Jun Jang", Role: "Undergraduate Student", Email: "jj010822@gmail.com", Photo: "upload/members/장준.png"},
	{Name: "Deokhyeon Kim", Role: "Undergraduate Student", Email: "matho7830@gmail.com", Photo: "upload/members/김덕현.png"},
	{Name: "Subin Yoon", Role: "Undergraduate Student", Email: "operativeyoon@gmail.com", Photo: "upload/members/윤수빈.png"},
}

// Home 首页，附带最新十篇论文
func Home(c *gin.Context) {
	latest, err := paper.Latest(10)
	if err != nil {
		log.Error("查询最新论文失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{
		"page":          "home",
		"latest_papers": latest,
	})
}

// StaticPage 纯静态页面只返回页面标识，内容由前端渲染
func StaticPage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Success(c, gin.H{
			"page": name,
		})
	}
}

// CurrentMembers 在册成员名单
func CurrentMembers(c *gin.Context) {
	response.Success(c, gin.H{
		"page":    "current",
		"members": members,
	})
}

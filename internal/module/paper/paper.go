package paper

import (
	"sort"
	"strconv"

	"lab-website-system/internal/global/database"
	"lab-website-system/internal/global/httpclient"
	"lab-website-system/internal/global/response"
	"lab-website-system/internal/model"
	"lab-website-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PageSize 列表固定分页大小
const PageSize = 15

// SortByDate 按（年份降序，月份序号降序）稳定排序；
// 无法识别的月份按序号 0 处理，落在同年最后
func SortByDate(papers []model.Paper) {
	sort.SliceStable(papers, func(i, j int) bool {
		if papers[i].Year != papers[j].Year {
			return papers[i].Year > papers[j].Year
		}
		return tools.MonthIndex(papers[i].Month) > tools.MonthIndex(papers[j].Month)
	})
}

// Paginate 返回第 page 页（从 1 起）；越界页返回空切片
func Paginate(papers []model.Paper, page int) []model.Paper {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(papers) {
		return []model.Paper{}
	}
	end := start + PageSize
	if end > len(papers) {
		end = len(papers)
	}
	return papers[start:end]
}

// Latest 返回按时间排序的前 n 篇论文，首页使用
func Latest(n int) ([]model.Paper, error) {
	var papers []model.Paper
	if err := database.DB.Find(&papers).Error; err != nil {
		return nil, err
	}
	SortByDate(papers)
	if len(papers) > n {
		papers = papers[:n]
	}
	return papers, nil
}

// ListPapersReq 列表查询参数
type ListPapersReq struct {
	Year string `form:"year"` // 年份筛选，缺省 all
	Page int    `form:"page"` // 页码，从 1 起
}

// ListPapers 论文列表：年份筛选 + 固定分页。
// 未筛选时额外返回完整排序数据集，供前端按年份分组展示。
func ListPapers(c *gin.Context) {
	var req ListPapersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.Year == "" {
		req.Year = "all"
	}
	if req.Page < 1 {
		req.Page = 1
	}

	var papers []model.Paper
	if err := database.DB.Find(&papers).Error; err != nil {
		log.Error("查询论文列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	SortByDate(papers)

	years := distinctYears(papers)

	filtered := papers
	if req.Year != "all" {
		filtered = make([]model.Paper, 0)
		for _, p := range papers {
			if strconv.Itoa(p.Year) == req.Year {
				filtered = append(filtered, p)
			}
		}
	}

	result := gin.H{
		"papers":        Paginate(filtered, req.Page),
		"years":         years,
		"selected_year": req.Year,
		"page":          req.Page,
		"total":         len(filtered),
		"per_page":      PageSize,
	}
	if req.Year == "all" {
		result["all_papers"] = filtered
	}

	response.Success(c, result)
}

func distinctYears(papers []model.Paper) []int {
	seen := map[int]bool{}
	years := make([]int, 0)
	for _, p := range papers {
		if !seen[p.Year] {
			seen[p.Year] = true
			years = append(years, p.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// CreatePaperReq 创建论文请求
type CreatePaperReq struct {
	Title   string `json:"title" binding:"required"`
	Author  string `json:"author" binding:"required"`
	Journal string `json:"journal" binding:"required"`
	Month   string `json:"month"`
	Year    int    `json:"year" binding:"required"`
	Link    string `json:"link"`
}

// CreatePaper 创建论文（仅管理员）
func CreatePaper(c *gin.Context) {
	var req CreatePaperReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建论文请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	paper := model.Paper{
		Title:   req.Title,
		Author:  req.Author,
		Journal: req.Journal,
		Month:   req.Month,
		Year:    req.Year,
		Link:    req.Link,
	}
	if err := database.DB.Create(&paper).Error; err != nil {
		log.Error("创建论文失败", "error", err, "title", req.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	probeLink(c, req.Link)

	log.Info("论文创建成功", "id", paper.ID, "title", paper.Title)
	response.Success(c, gin.H{
		"paper_id": paper.ID,
	})
}

// probeLink 探测论文链接可达性，失败只告警不阻断
func probeLink(c *gin.Context, link string) {
	if link == "" || httpclient.Client == nil {
		return
	}
	resp, err := httpclient.Client.R().SetContext(c.Request.Context()).Head(link)
	if err != nil {
		log.Warn("论文链接探测失败", "link", link, "error", err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Warn("论文链接不可达", "link", link, "status", resp.StatusCode())
	}
}

// DeletePaper 删除论文（仅管理员）
func DeletePaper(c *gin.Context) {
	id := c.Param("id")

	var paper model.Paper
	if err := database.DB.First(&paper, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("论文不存在", "id", id)
			response.Fail(c, response.ErrNotFound)
			return
		}
		log.Error("查询论文失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Delete(&paper).Error; err != nil {
		log.Error("删除论文失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("论文删除成功", "id", paper.ID)
	response.Success(c)
}

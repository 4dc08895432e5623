package conference

import (
	"sort"
	"strconv"

	"lab-website-system/internal/global/database"
	"lab-website-system/internal/global/response"
	"lab-website-system/internal/model"
	"lab-website-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const pageSize = 15

// sortByDate 排序规则与论文列表一致：年份降序，月份序号降序
func sortByDate(conferences []model.Conference) {
	sort.SliceStable(conferences, func(i, j int) bool {
		if conferences[i].Year != conferences[j].Year {
			return conferences[i].Year > conferences[j].Year
		}
		return tools.MonthIndex(conferences[i].Month) > tools.MonthIndex(conferences[j].Month)
	})
}

func paginate(conferences []model.Conference, page int) []model.Conference {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(conferences) {
		return []model.Conference{}
	}
	end := start + pageSize
	if end > len(conferences) {
		end = len(conferences)
	}
	return conferences[start:end]
}

// ListConferencesReq 列表查询参数
type ListConferencesReq struct {
	Year string `form:"year"`
	Page int    `form:"page"`
}

// ListConferences 会议列表：年份筛选 + 固定分页
func ListConferences(c *gin.Context) {
	var req ListConferencesReq
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

	var conferences []model.Conference
	if err := database.DB.Find(&conferences).Error; err != nil {
		log.Error("查询会议列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	sortByDate(conferences)

	seen := map[int]bool{}
	years := make([]int, 0)
	for _, cf := range conferences {
		if !seen[cf.Year] {
			seen[cf.Year] = true
			years = append(years, cf.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	filtered := conferences
	if req.Year != "all" {
		filtered = make([]model.Conference, 0)
		for _, cf := range conferences {
			if strconv.Itoa(cf.Year) == req.Year {
				filtered = append(filtered, cf)
			}
		}
	}

	result := gin.H{
		"conferences":   paginate(filtered, req.Page),
		"years":         years,
		"selected_year": req.Year,
		"page":          req.Page,
		"total":         len(filtered),
		"per_page":      pageSize,
	}
	if req.Year == "all" {
		result["all_conferences"] = filtered
	}

	response.Success(c, result)
}

// CreateConferenceReq 创建会议条目请求
type CreateConferenceReq struct {
	Title      string `json:"title" binding:"required"`
	Author     string `json:"author" binding:"required"`
	Conference string `json:"conference" binding:"required"`
	Month      string `json:"month"`
	Year       int    `json:"year" binding:"required"`
}

// CreateConference 创建会议条目（仅管理员）
func CreateConference(c *gin.Context) {
	var req CreateConferenceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建会议请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	conference := model.Conference{
		Title:      req.Title,
		Author:     req.Author,
		Conference: req.Conference,
		Month:      req.Month,
		Year:       req.Year,
	}
	if err := database.DB.Create(&conference).Error; err != nil {
		log.Error("创建会议失败", "error", err, "title", req.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("会议创建成功", "id", conference.ID, "title", conference.Title)
	response.Success(c, gin.H{
		"conference_id": conference.ID,
	})
}

// DeleteConference 删除会议条目（仅管理员）
func DeleteConference(c *gin.Context) {
	id := c.Param("id")

	var conference model.Conference
	if err := database.DB.First(&conference, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("会议不存在", "id", id)
			response.Fail(c, response.ErrNotFound)
			return
		}
		log.Error("查询会议失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Delete(&conference).Error; err != nil {
		log.Error("删除会议失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("会议删除成功", "id", conference.ID)
	response.Success(c)
}

package paper

import (
	"lab-website-system/internal/global/database"
	"lab-website-system/internal/global/response"
	"lab-website-system/internal/model"
	"lab-website-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type exportRow struct {
	Title   string `excel:"Title"`
	Author  string `excel:"Author"`
	Journal string `excel:"Journal"`
	Month   string `excel:"Month"`
	Year    int    `excel:"Year"`
	Link    string `excel:"Link"`
}

// ExportPapers 导出全部论文为 xlsx（仅管理员）
func ExportPapers(c *gin.Context) {
	var papers []model.Paper
	if err := database.DB.Find(&papers).Error; err != nil {
		log.Error("查询论文列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	SortByDate(papers)

	rows := make([]exportRow, 0, len(papers))
	for _, p := range papers {
		rows = append(rows, exportRow{
			Title:   p.Title,
			Author:  p.Author,
			Journal: p.Journal,
			Month:   p.Month,
			Year:    p.Year,
			Link:    p.Link,
		})
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := tools.ExportToExcel(f, "Papers", rows); err != nil {
		log.Error("导出论文失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	f.DeleteSheet("Sheet1")

	if err := tools.SendExcel(c, f, "papers.xlsx"); err != nil {
		log.Error("下发论文导出文件失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
	}
}

package conference

import (
	"lab-website-system/internal/global/database"
	"lab-website-system/internal/global/response"
	"lab-website-system/internal/model"
	"lab-website-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type exportRow struct {
	Title      string `excel:"Title"`
	Author     string `excel:"Author"`
	Conference string `excel:"Conference"`
	Month      string `excel:"Month"`
	Year       int    `excel:"Year"`
}

// ExportConferences 导出全部会议条目为 xlsx（仅管理员）
func ExportConferences(c *gin.Context) {
	var conferences []model.Conference
	if err := database.DB.Find(&conferences).Error; err != nil {
		log.Error("查询会议列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	sortByDate(conferences)

	rows := make([]exportRow, 0, len(conferences))
	for _, cf := range conferences {
		rows = append(rows, exportRow{
			Title:      cf.Title,
			Author:     cf.Author,
			Conference: cf.Conference,
			Month:      cf.Month,
			Year:       cf.Year,
		})
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := tools.ExportToExcel(f, "Conferences", rows); err != nil {
		log.Error("导出会议失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	f.DeleteSheet("Sheet1")

	if err := tools.SendExcel(c, f, "conferences.xlsx"); err != nil {
		log.Error("下发会议导出文件失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
	}
}

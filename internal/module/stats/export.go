package stats

import (
	"strings"

	"school-activities-system/internal/global/response"
	"school-activities-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Report"

// ExportReports 导出活动报表为 xlsx，直接写入响应流
func ExportReports(c *gin.Context) {
	activities, err := loadActivities()
	if err != nil {
		log.Error("查询活动报表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	reports := buildReports(activities)

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	header := []any{"Activity", "Description", "Schedule", "Participants", "Capacity", "Utilization (%)", "Emails"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	for i, r := range reports {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			response.Fail(c, response.ErrInternal.WithOrigin(err))
			return
		}
		row := []any{
			r.Name,
			r.Description,
			r.Schedule,
			r.ParticipantsCount,
			r.MaxParticipants,
			r.UtilizationPercentage,
			strings.Join(r.Participants, ", "),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			response.Fail(c, response.ErrInternal.WithOrigin(err))
			return
		}
	}

	tools.SetDownloadHeaders(c, "activity-report.xlsx", tools.ExcelContentType)
	if err := f.Write(c.Writer); err != nil {
		// 响应头已发出，只能记日志
		log.Error("写出报表失败", "error", err)
	}
}

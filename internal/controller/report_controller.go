package controller

import (
	"error_book_backend/internal/service"
	"error_book_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// Statistics godoc
// @Summary 获取统计数据
// @Tags 报告
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Statistics} "获取成功"
// @Router /api/v1/reports/statistics [get]
func (c *ReportController) Statistics(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	stats, err := c.ReportService.GetStatistics(ctx.Request.Context(), user.ID)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, "获取成功", stats)
}

// Weekly godoc
// @Summary 获取周报
// @Tags 报告
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.WeeklyReport} "获取成功"
// @Router /api/v1/reports/weekly [get]
func (c *ReportController) Weekly(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	report := c.ReportService.GetWeeklyReport(user.ID)
	util.Success(ctx, "获取成功", report)
}

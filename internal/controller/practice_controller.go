package controller

import (
	"error_book_backend/internal/service"
	"error_book_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

// Recommend godoc
// @Summary 推荐练习题
// @Tags 练习
// @Produce  json
// @Security ApiKeyAuth
// @Param   subject query string false "学科"
// @Param   limit query int false "数量上限"
// @Success 200 {object} util.Response "推荐成功"
// @Router /api/v1/practice/recommend [get]
func (c *PracticeController) Recommend(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	limit := util.ParseIntDefault(ctx.Query("limit"), 10)
	questions := c.PracticeService.Recommend(user.ID, ctx.Query("subject"), limit)
	util.Success(ctx, "推荐成功", questions)
}

// swagger:model PracticeSubmitRequest
type PracticeSubmitRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	TimeSpent  int    `json:"time_spent" binding:"omitempty,min=0"`
}

// Submit godoc
// @Summary 提交练习答案
// @Tags 练习
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body PracticeSubmitRequest true "答案"
// @Success 200 {object} util.Response{data=service.PracticeSubmitResult} "提交成功"
// @Router /api/v1/practice/submit [post]
func (c *PracticeController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req PracticeSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.FailBind(ctx, err)
		return
	}

	result := c.PracticeService.Submit(user.ID, req.QuestionID, req.Answer, req.TimeSpent)
	util.Success(ctx, "提交成功", result)
}

// ReviewPlan godoc
// @Summary 获取复习计划
// @Tags 练习
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ReviewPlan} "获取成功"
// @Router /api/v1/practice/review-plan [get]
func (c *PracticeController) ReviewPlan(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	plan := c.PracticeService.GetReviewPlan(user.ID)
	util.Success(ctx, "获取成功", plan)
}

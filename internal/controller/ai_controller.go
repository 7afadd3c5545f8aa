package controller

import (
	"error_book_backend/internal/service"
	"error_book_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	AIService       *service.AIService
	QuestionService *service.ErrorQuestionService
}

func NewAIController(aiService *service.AIService, questionService *service.ErrorQuestionService) *AIController {
	return &AIController{
		AIService:       aiService,
		QuestionService: questionService,
	}
}

// swagger:model AIAnalyzeRequest
type AIAnalyzeRequest struct {
	QuestionID    string   `json:"question_id" binding:"required"`
	AnalysisTypes []string `json:"analysis_types" binding:"omitempty,dive,oneof=error_analysis similar_questions explanation knowledge_extraction"`
}

// Analyze godoc
// @Summary 分析错题
// @Description 错误原因分析，支持多种分析类型
// @Tags AI分析
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body AIAnalyzeRequest true "分析请求"
// @Success 200 {object} util.Response{data=[]service.AIAnalysisResult} "分析完成"
// @Failure 404 {object} util.ErrorResponse "错题不存在"
// @Router /api/v1/ai/analyze [post]
func (c *AIController) Analyze(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req AIAnalyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.FailBind(ctx, err)
		return
	}

	// 只允许分析自己的错题
	question, err := c.QuestionService.Get(user, req.QuestionID)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	results := c.AIService.Analyze(question, req.AnalysisTypes)
	util.Success(ctx, "分析完成", results)
}

// swagger:model SimilarRequest
type SimilarRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Limit      int    `json:"limit" binding:"omitempty,min=1,max=20"`
}

// Similar godoc
// @Summary 查找相似题目
// @Tags AI分析
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SimilarRequest true "查找请求"
// @Success 200 {object} util.Response{data=service.SimilarQuestionsResult} "查找成功"
// @Router /api/v1/ai/similar [post]
func (c *AIController) Similar(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req SimilarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.FailBind(ctx, err)
		return
	}
	if req.Limit == 0 {
		req.Limit = 5
	}

	if _, err := c.QuestionService.Get(user, req.QuestionID); err != nil {
		util.Fail(ctx, err)
		return
	}

	result := c.AIService.FindSimilar(req.QuestionID, req.Limit)
	util.Success(ctx, "查找成功", result)
}

// swagger:model ExplainRequest
type ExplainRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
}

// Explain godoc
// @Summary 生成解题思路
// @Tags AI分析
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ExplainRequest true "生成请求"
// @Success 200 {object} util.Response{data=service.ExplanationResult} "生成成功"
// @Router /api/v1/ai/explain [post]
func (c *AIController) Explain(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req ExplainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.FailBind(ctx, err)
		return
	}

	if _, err := c.QuestionService.Get(user, req.QuestionID); err != nil {
		util.Fail(ctx, err)
		return
	}

	result := c.AIService.Explain(req.QuestionID)
	util.Success(ctx, "生成成功", result)
}

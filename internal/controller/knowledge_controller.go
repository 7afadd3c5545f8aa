package controller

import (
	"error_book_backend/internal/service"
	"error_book_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type KnowledgeController struct {
	KnowledgeService *service.KnowledgeService
}

func NewKnowledgeController(knowledgeService *service.KnowledgeService) *KnowledgeController {
	return &KnowledgeController{KnowledgeService: knowledgeService}
}

// Graph godoc
// @Summary 获取知识图谱
// @Tags 知识图谱
// @Produce  json
// @Security ApiKeyAuth
// @Param   subject query string false "学科"
// @Success 200 {object} util.Response{data=service.KnowledgeGraph} "获取成功"
// @Router /api/v1/knowledge/graph [get]
func (c *KnowledgeController) Graph(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	graph := c.KnowledgeService.GetGraph(user.ID, ctx.Query("subject"))
	util.Success(ctx, "获取成功", graph)
}

// WeakPoints godoc
// @Summary 获取薄弱知识点
// @Tags 知识图谱
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "获取成功"
// @Router /api/v1/knowledge/weak-points [get]
func (c *KnowledgeController) WeakPoints(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	points := c.KnowledgeService.GetWeakPoints(user.ID)
	util.Success(ctx, "获取成功", points)
}

// LearningPath godoc
// @Summary 获取学习路径
// @Tags 知识图谱
// @Produce  json
// @Security ApiKeyAuth
// @Param   subject query string true "学科"
// @Success 200 {object} util.Response{data=service.LearningPath} "获取成功"
// @Failure 422 {object} util.ErrorResponse "缺少学科参数"
// @Router /api/v1/knowledge/learning-path [get]
func (c *KnowledgeController) LearningPath(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	subject := ctx.Query("subject")
	if subject == "" {
		util.Fail(ctx, util.NewValidationError("缺少学科参数", nil))
		return
	}

	path := c.KnowledgeService.GetLearningPath(user.ID, subject)
	util.Success(ctx, "获取成功", path)
}

package controller

import (
	"error_book_backend/internal/service"
	"error_book_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ErrorQuestionController struct {
	QuestionService *service.ErrorQuestionService
	StorageService  *service.StorageService
}

func NewErrorQuestionController(questionService *service.ErrorQuestionService, storageService *service.StorageService) *ErrorQuestionController {
	return &ErrorQuestionController{
		QuestionService: questionService,
		StorageService:  storageService,
	}
}

// Create godoc
// @Summary 创建错题
// @Tags 错题
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CreateErrorQuestionInput true "错题信息"
// @Success 201 {object} util.Response{data=model.ErrorQuestion} "创建成功"
// @Failure 422 {object} util.ErrorResponse "请求参数验证失败"
// @Router /api/v1/errors [post]
func (c *ErrorQuestionController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var input service.CreateErrorQuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.FailBind(ctx, err)
		return
	}

	question, err := c.QuestionService.Create(user, input)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Created(ctx, "错题创建成功", question)
}

// List godoc
// @Summary 获取错题列表
// @Description 支持按学科/难度/错误类型/收藏/归档筛选，白名单字段排序，分页返回
// @Tags 错题
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码（1 起）"
// @Param   page_size query int false "每页条数（1-100）"
// @Param   subject query string false "学科"
// @Param   difficulty query string false "难度 easy/medium/hard"
// @Param   error_type query string false "错误类型"
// @Param   is_favorite query bool false "是否收藏"
// @Param   is_archived query bool false "是否归档"
// @Param   sort_by query string false "排序字段"
// @Param   sort_order query string false "asc/desc"
// @Success 200 {object} util.Response{data=util.PageResponse} "获取成功"
// @Failure 422 {object} util.ErrorResponse "非法的筛选或排序参数"
// @Router /api/v1/errors [get]
func (c *ErrorQuestionController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var query service.ListErrorQuestionsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.FailBind(ctx, err)
		return
	}

	page, err := c.QuestionService.List(user, query)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, "获取成功", page)
}

// Get godoc
// @Summary 获取错题详情
// @Tags 错题
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "错题ID"
// @Success 200 {object} util.Response{data=model.ErrorQuestion} "获取成功"
// @Failure 404 {object} util.ErrorResponse "错题不存在"
// @Router /api/v1/errors/{id} [get]
func (c *ErrorQuestionController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	question, err := c.QuestionService.Get(user, ctx.Param("id"))
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, "获取成功", question)
}

// Update godoc
// @Summary 更新错题
// @Description 部分更新，仅修改请求中出现的字段
// @Tags 错题
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "错题ID"
// @Param   body body service.UpdateErrorQuestionInput true "更新字段"
// @Success 200 {object} util.Response{data=model.ErrorQuestion} "更新成功"
// @Failure 404 {object} util.ErrorResponse "错题不存在"
// @Router /api/v1/errors/{id} [put]
func (c *ErrorQuestionController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var input service.UpdateErrorQuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.FailBind(ctx, err)
		return
	}

	question, err := c.QuestionService.Update(user, ctx.Param("id"), input)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, "更新成功", question)
}

// Delete godoc
// @Summary 删除错题
// @Tags 错题
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "错题ID"
// @Success 200 {object} util.Response "删除成功"
// @Failure 404 {object} util.ErrorResponse "错题不存在"
// @Router /api/v1/errors/{id} [delete]
func (c *ErrorQuestionController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	if err := c.QuestionService.Delete(user, ctx.Param("id")); err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, "删除成功", nil)
}

// UploadImage godoc
// @Summary 上传题目图片
// @Description 上传图片并返回可写入 question_image_url 的地址
// @Tags 错题
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "图片文件"
// @Success 200 {object} util.Response{data=object} "上传成功"
// @Failure 422 {object} util.ErrorResponse "文件类型或大小不合法"
// @Router /api/v1/errors/upload [post]
func (c *ErrorQuestionController) UploadImage(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.FailBind(ctx, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	url, err := c.StorageService.UploadQuestionImage(
		ctx.Request.Context(),
		user.ID,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		contentType,
	)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, "上传成功", gin.H{"url": url})
}

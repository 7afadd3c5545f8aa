package util

import (
	"errors"
	"net/http"

	"error_book_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// debugMode 控制 500 响应是否携带原始错误信息，由 app 启动时设置
var debugMode bool

func SetDebugMode(debug bool) {
	debugMode = debug
}

// Response 统一成功响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse 统一错误响应结构
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   AppError `json:"error"`
}

// PageResponse 分页响应结构
type PageResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// NewPageResponse 组装分页响应，total_pages 向上取整
func NewPageResponse(items interface{}, total int64, page, pageSize int) *PageResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &PageResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func Success(c *gin.Context, message string, data interface{}) {
	if message == "" {
		message = "操作成功"
	}
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	if message == "" {
		message = "创建成功"
	}
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail 将错误渲染为统一错误响应。*AppError 按其自带状态码渲染，
// 其它错误一律按 500 处理，调试模式外不向客户端泄露详情。
func Fail(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, ErrorResponse{Success: false, Error: *appErr})
		return
	}

	logger.Log.Error("unhandled error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)

	internal := AppError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_SERVER_ERROR",
		Message: "服务器内部错误",
	}
	if debugMode {
		internal.Detail = err.Error()
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Error: internal})
}

// FailBind 将请求绑定/校验错误渲染为 422
func FailBind(c *gin.Context, err error) {
	Fail(c, NewValidationError("", err.Error()))
}

package util

import "net/http"

// AppError 应用层类型化错误，携带 HTTP 状态码、机器可读错误码与可选详情，
// 由控制器边界统一渲染为错误响应。
type AppError struct {
	Status  int         `json:"-"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

// WithDetail 附加错误详情，返回副本以保持预定义错误不可变
func (e *AppError) WithDetail(detail interface{}) *AppError {
	return &AppError{
		Status:  e.Status,
		Code:    e.Code,
		Message: e.Message,
		Detail:  detail,
	}
}

func newAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// ==================== 认证相关 ====================

func NewAuthenticationError(message string) *AppError {
	if message == "" {
		message = "认证失败"
	}
	return newAppError(http.StatusUnauthorized, "AUTHENTICATION_ERROR", message)
}

func NewPermissionDenied(message string) *AppError {
	if message == "" {
		message = "权限不足"
	}
	return newAppError(http.StatusForbidden, "PERMISSION_DENIED", message)
}

func NewTokenExpired() *AppError {
	return newAppError(http.StatusUnauthorized, "TOKEN_EXPIRED", "Token 已过期")
}

func NewInvalidToken() *AppError {
	return newAppError(http.StatusUnauthorized, "INVALID_TOKEN", "无效的 Token")
}

// ==================== 资源相关 ====================

func NewNotFound(message string) *AppError {
	if message == "" {
		message = "资源未找到"
	}
	return newAppError(http.StatusNotFound, "NOT_FOUND", message)
}

func NewAlreadyExists(message string) *AppError {
	if message == "" {
		message = "资源已存在"
	}
	return newAppError(http.StatusConflict, "ALREADY_EXISTS", message)
}

// ==================== 业务逻辑相关 ====================

func NewValidationError(message string, detail interface{}) *AppError {
	if message == "" {
		message = "请求参数验证失败"
	}
	e := newAppError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", message)
	e.Detail = detail
	return e
}

func NewBusinessLogicError(message string) *AppError {
	if message == "" {
		message = "业务逻辑错误"
	}
	return newAppError(http.StatusBadRequest, "BUSINESS_LOGIC_ERROR", message)
}

// ==================== 外部服务相关 ====================

func NewExternalServiceError(message string) *AppError {
	if message == "" {
		message = "外部服务错误"
	}
	return newAppError(http.StatusServiceUnavailable, "EXTERNAL_SERVICE_ERROR", message)
}

func NewAIServiceError(message string) *AppError {
	if message == "" {
		message = "AI 服务错误"
	}
	return newAppError(http.StatusServiceUnavailable, "AI_SERVICE_ERROR", message)
}

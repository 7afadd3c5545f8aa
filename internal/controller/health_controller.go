package controller

import (
	"net/http"

	"error_book_backend/internal/config"
	"error_book_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
	Cfg   *config.Config
}

func NewHealthController(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *HealthController {
	return &HealthController{DB: db, Redis: rdb, Cfg: cfg}
}

// HealthCheck godoc
// @Summary 健康检查
// @Description 检查服务与依赖组件状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	dbStatus := "up"
	if err := sqlDB.Ping(); err != nil {
		dbStatus = "down"
	}

	redisStatus := "up"
	if err := c.Redis.Ping(ctx.Request.Context()).Err(); err != nil {
		redisStatus = "down"
	}

	// 数据库不可用则服务不可用；缓存不可用服务降级但仍可工作
	status := "healthy"
	httpStatus := http.StatusOK
	if redisStatus == "down" {
		status = "degraded"
	}
	if dbStatus == "down" {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	ctx.JSON(httpStatus, util.Response{
		Success: httpStatus == http.StatusOK,
		Message: status,
		Data: gin.H{
			"status": status,
			"app":    c.Cfg.Server.Name,
			"components": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		},
	})
}

// Root godoc
// @Summary API 根路径
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	util.Success(ctx, "ok", gin.H{
		"message": "Welcome to " + c.Cfg.Server.Name + " API",
		"docs":    "/swagger/index.html",
	})
}

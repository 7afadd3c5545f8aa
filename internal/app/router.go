package app

import (
	"error_book_backend/internal/config"
	"error_book_backend/internal/middleware"
	"error_book_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/", c.health.Root)
	router.GET("/health", c.health.HealthCheck)
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", c.auth.Register)
			auth.POST("/login", c.auth.Login)
			auth.POST("/refresh", c.auth.Refresh)
		}

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(cfg, repos.user))
		{
			me := authed.Group("/auth")
			{
				me.GET("/me", c.auth.Me)
				me.PUT("/me", c.auth.UpdateMe)
			}

			errors := authed.Group("/errors")
			{
				errors.POST("", c.errorQuestion.Create)
				errors.GET("", c.errorQuestion.List)
				errors.POST("/upload", c.errorQuestion.UploadImage)
				errors.GET("/:id", c.errorQuestion.Get)
				errors.PUT("/:id", c.errorQuestion.Update)
				errors.DELETE("/:id", c.errorQuestion.Delete)
			}

			ai := authed.Group("/ai")
			{
				ai.POST("/analyze", c.ai.Analyze)
				ai.POST("/similar", c.ai.Similar)
				ai.POST("/explain", c.ai.Explain)
			}

			knowledge := authed.Group("/knowledge")
			{
				knowledge.GET("/graph", c.knowledge.Graph)
				knowledge.GET("/weak-points", c.knowledge.WeakPoints)
				knowledge.GET("/learning-path", c.knowledge.LearningPath)
			}

			practice := authed.Group("/practice")
			{
				practice.GET("/recommend", c.practice.Recommend)
				practice.POST("/submit", c.practice.Submit)
				practice.GET("/review-plan", c.practice.ReviewPlan)
			}

			reports := authed.Group("/reports")
			{
				reports.GET("/statistics", c.report.Statistics)
				reports.GET("/weekly", c.report.Weekly)
			}
		}
	}
}

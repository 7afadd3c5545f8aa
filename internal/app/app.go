package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"error_book_backend/internal/config"
	"error_book_backend/internal/controller"
	"error_book_backend/internal/repository"
	"error_book_backend/internal/service"
	"error_book_backend/internal/util"
	"error_book_backend/pkg/configwatcher"
	"error_book_backend/pkg/database"
	"error_book_backend/pkg/logger"
	"error_book_backend/pkg/monitoring"
	"error_book_backend/pkg/security"
	"error_book_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  interface{ Shutdown(context.Context) error }
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user          *repository.UserRepository
	errorQuestion *repository.ErrorQuestionRepository
}

type services struct {
	auth          *service.AuthService
	errorQuestion *service.ErrorQuestionService
	ai            *service.AIService
	knowledge     *service.KnowledgeService
	practice      *service.PracticeService
	report        *service.ReportService
	storage       *service.StorageService
	cache         *service.CacheService
}

type controllers struct {
	auth          *controller.AuthController
	errorQuestion *controller.ErrorQuestionController
	ai            *controller.AIController
	knowledge     *controller.KnowledgeController
	practice      *controller.PracticeController
	report        *controller.ReportController
	health        *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:          repository.NewUserRepository(db),
		errorQuestion: repository.NewErrorQuestionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.cache = service.NewCacheService(rdb)
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.errorQuestion = service.NewErrorQuestionService(repos.errorQuestion, s.cache)
	s.ai = service.NewAIService(cfg)
	s.knowledge = service.NewKnowledgeService()
	s.practice = service.NewPracticeService()
	s.report = service.NewReportService(s.cache, repos.errorQuestion)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client, cfg *config.Config) *controllers {
	return &controllers{
		auth:          controller.NewAuthController(s.auth),
		errorQuestion: controller.NewErrorQuestionController(s.errorQuestion, s.storage),
		ai:            controller.NewAIController(s.ai, s.errorQuestion),
		knowledge:     controller.NewKnowledgeController(s.knowledge),
		practice:      controller.NewPracticeController(s.practice),
		report:        controller.NewReportController(s.report),
		health:        controller.NewHealthController(db, rdb, cfg),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	util.SetDebugMode(cfg.IsDebug())

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// debug 模式或显式指定时执行迁移，生产环境默认跳过
	if cfg.IsDebug() || cfg.ForceMigrate || cfg.MigrateOnly {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}
	if cfg.MigrateOnly {
		logger.Log.Info("Database migration completed, exiting")
		os.Exit(0)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb, cfg)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Server.Name, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// 配置热更新
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		for _, callback := range app.configCallbacks {
			callback(newCfg)
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if err := a.Redis.Close(); err != nil {
		logger.Log.Error("Failed to close redis", zap.Error(err))
	}

	log.Println("Server exiting")
}

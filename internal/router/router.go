package router

import (
	"time"

	"visitreg/internal/config"
	"visitreg/internal/handler"
	"visitreg/internal/infra"
	"visitreg/internal/middleware"
	"visitreg/internal/model"
	"visitreg/internal/repository"
	"visitreg/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository/TokenStore ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories / stores ────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	tokenStore := infra.NewRedisTokenStore(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, tokenStore, cfg)
	visitorSvc := service.NewVisitorService(visitorRepo)
	statsSvc := service.NewStatsService(statsRepo, visitorRepo)
	exportSvc := service.NewExportService()

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	visitorsH := handler.NewVisitorsHandler(visitorSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	exportH := handler.NewExportHandler(visitorRepo, exportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes — every operation below requires a resolved identity;
	// admin-only operations declare their role predicate at registration.
	authMW := middleware.TokenAuth(authSvc)
	protected := r.Group("/", authMW)
	{
		protected.POST("/auth/logout", authH.Logout)
		protected.GET("/auth/user", authH.CurrentUser)

		protected.GET("/visitors", visitorsH.List)
		protected.GET("/visitors/:id", visitorsH.Get)
		protected.POST("/visitors", visitorsH.Create)
		protected.PUT("/visitors/:id/status", visitorsH.UpdateStatus)
		protected.PUT("/visitors/:id", middleware.RequireRole(model.RoleAdmin), visitorsH.Update)
		protected.DELETE("/visitors/:id", middleware.RequireRole(model.RoleAdmin), visitorsH.Delete)

		protected.GET("/visitor-stats", statsH.Stats)
		protected.GET("/visitor-history", statsH.History)
		protected.GET("/visitor-history/export", exportH.Export)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

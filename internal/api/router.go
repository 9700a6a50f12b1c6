package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/poscentral/website-api/docs"
	"github.com/poscentral/website-api/internal/api/handler"
	"github.com/poscentral/website-api/internal/api/middleware"
	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
	"github.com/poscentral/website-api/internal/core/service"
	"github.com/poscentral/website-api/internal/infrastructure/config"
	"github.com/poscentral/website-api/internal/infrastructure/db/postgres"
	redisdb "github.com/poscentral/website-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// staticDir is where uploaded images live; it is served under the upload
// base URL.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, limiter ports.LimiterStore, images ports.ImageStore, staticDir string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("website"))

	// --- Dependencies ---
	slugService := service.NewSlugService(postgres.NewSlugRepository(db))
	tokenService := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	ledger := redisdb.NewTokenLedger(rdb)

	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)

	authService := service.NewAuthService(userRepo, tokenService, ledger, log)
	userService := service.NewUserService(userRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, slugService, log)
	productService := service.NewProductService(postgres.NewProductRepository(db), categoryRepo, slugService, log)
	blogService := service.NewBlogService(postgres.NewBlogRepository(db), slugService, log)
	enquiryService := service.NewEnquiryService(postgres.NewEnquiryRepository(db), log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	slugHandler := handler.NewSlugHandler(slugService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	blogHandler := handler.NewBlogHandler(blogService)
	enquiryHandler := handler.NewEnquiryHandler(enquiryService)
	uploadHandler := handler.NewUploadHandler(images, cfg.Upload.MaxMB*1024*1024)

	authRequired := middleware.Auth(tokenService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	superAdminOnly := middleware.RequireRole(domain.RoleSuperAdmin)

	// --- Health probes and operational endpoints ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.Static(cfg.Upload.BaseURL, staticDir)

	// --- Public site ---
	e.GET("/api/categories", categoryHandler.ListPublic)
	e.GET("/api/categories/:slug", categoryHandler.GetPublic)
	e.GET("/api/products", productHandler.ListPublic)
	e.GET("/api/products/:slug", productHandler.GetPublic)
	e.GET("/api/blogs", blogHandler.ListPublic)
	e.GET("/api/blogs/:slug", blogHandler.GetPublic)
	e.POST("/api/contact", enquiryHandler.Submit, middleware.RateLimit(limiter, "contact", log))

	// --- Auth ---
	e.POST("/api/auth/login", authHandler.Login, middleware.RateLimit(limiter, "login", log))
	e.POST("/api/auth/refresh", authHandler.Refresh)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/me", authHandler.Me, authRequired)

	// --- Admin dashboard ---
	admin := e.Group("/api/admin", authRequired, adminOnly)
	admin.POST("/validate-slug", slugHandler.ValidateSlug)
	admin.POST("/uploads", uploadHandler.Upload)

	admin.GET("/categories", categoryHandler.ListAdmin)
	admin.POST("/categories", categoryHandler.Create)
	admin.GET("/categories/:id", categoryHandler.GetAdmin)
	admin.PUT("/categories/:id", categoryHandler.Update)
	admin.DELETE("/categories/:id", categoryHandler.Delete)

	admin.GET("/products", productHandler.ListAdmin)
	admin.POST("/products", productHandler.Create)
	admin.GET("/products/:id", productHandler.GetAdmin)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)

	admin.GET("/blogs", blogHandler.ListAdmin)
	admin.POST("/blogs", blogHandler.Create)
	admin.GET("/blogs/:id", blogHandler.GetAdmin)
	admin.PUT("/blogs/:id", blogHandler.Update)
	admin.DELETE("/blogs/:id", blogHandler.Delete)

	admin.GET("/enquiries", enquiryHandler.List)
	admin.PUT("/enquiries/:id/status", enquiryHandler.UpdateStatus)

	users := admin.Group("/users", superAdminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	return e
}

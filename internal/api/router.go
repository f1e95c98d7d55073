package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/devnews/devnews-api/docs"
	"github.com/devnews/devnews-api/internal/api/handler"
	"github.com/devnews/devnews-api/internal/api/middleware"
	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

// RouterConfig carries everything the HTTP layer needs. Services are built in
// main and injected here; the router only wires them to routes.
type RouterConfig struct {
	AuthService     ports.AuthService
	TokenService    ports.TokenService
	Users           ports.UserRepository
	PostService     ports.PostService
	CommentService  ports.CommentService
	CategoryService ports.CategoryService
	UserService     ports.UserService
	StatsService    ports.StatsService
	FileService     ports.FileService

	Mongo     *mongo.Database
	Redis     *redis.Client
	UploadDir string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("devnews"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	postHandler := handler.NewPostHandler(cfg.PostService)
	commentHandler := handler.NewCommentHandler(cfg.CommentService)
	categoryHandler := handler.NewCategoryHandler(cfg.CategoryService)
	userHandler := handler.NewUserHandler(cfg.UserService)
	statsHandler := handler.NewStatsHandler(cfg.StatsService)
	uploadHandler := handler.NewUploadHandler(cfg.FileService)

	authRequired := middleware.Auth(cfg.TokenService, cfg.Users)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	api := e.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password/:token", authHandler.ResetPassword)

	// --- Posts: public reads, authenticated writes ---
	posts := api.Group("/posts")
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create, authRequired)
	posts.PUT("/:id", postHandler.Update, authRequired)
	posts.DELETE("/:id", postHandler.Delete, authRequired)

	// --- Categories: public reads, admin writes ---
	categories := api.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, authRequired, adminOnly)
	categories.PUT("/:id", categoryHandler.Update, authRequired, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, authRequired, adminOnly)

	// --- Comments: public reads, authenticated writes ---
	comments := api.Group("/comments")
	comments.GET("/post/:postId", commentHandler.ListByPost)
	comments.POST("", commentHandler.Create, authRequired)
	comments.PUT("/:id", commentHandler.Update, authRequired)
	comments.DELETE("/:id", commentHandler.Delete, authRequired)

	// --- Users: authenticated; listing and deletion are admin only ---
	users := api.Group("/users", authRequired)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Admin dashboard ---
	api.GET("/stats", statsHandler.Get, authRequired, adminOnly)

	// --- File uploads ---
	uploads := api.Group("/uploads", authRequired)
	uploads.POST("", uploadHandler.Upload)
	uploads.GET("/:id", uploadHandler.Get)
	uploads.DELETE("/:id", uploadHandler.Delete)

	return e
}

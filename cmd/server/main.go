// DevNews API server.
//
// Composition root: loads configuration, connects MongoDB and Redis, builds
// the service layer, and serves HTTP until interrupted.
//
//	@title			DevNews API
//	@version		1.0
//	@description	A small publishing platform: users, posts, categories, tags, comments, and file uploads.
//	@BasePath		/api
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devnews/devnews-api/internal/api"
	"github.com/devnews/devnews-api/internal/core/ports"
	"github.com/devnews/devnews-api/internal/core/service"
	"github.com/devnews/devnews-api/internal/infrastructure/config"
	mongodb "github.com/devnews/devnews-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devnews/devnews-api/internal/infrastructure/db/redis"
	"github.com/devnews/devnews-api/internal/infrastructure/mail"
	"github.com/devnews/devnews-api/internal/infrastructure/storage"
	"github.com/devnews/devnews-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connect failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	// --- Redis (optional: stats fall back to live queries without it) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, stats caching disabled")
		rdb = nil
	}

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	tagRepo := mongodb.NewTagRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	fileRepo := mongodb.NewFileRepository(db)

	if err := roleRepo.EnsureDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	blobStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload dir init failed")
	}

	var statsCache ports.StatsCache
	if rdb != nil {
		statsCache = redisdb.NewStatsCache(rdb)
	}

	mailer := mail.NewSender(mail.Config{
		APIKey:     cfg.Mail.ResendAPIKey,
		FromEmail:  cfg.Mail.FromEmail,
		SenderName: cfg.Mail.SenderName,
	})

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, roleRepo, tokenService, mailer, cfg.BaseURL, log)
	postService := service.NewPostService(postRepo, tagRepo, log)
	commentService := service.NewCommentService(commentRepo, postRepo, log)
	categoryService := service.NewCategoryService(categoryRepo)
	userService := service.NewUserService(userRepo, roleRepo, log)
	statsService := service.NewStatsService(userRepo, postRepo, commentRepo, categoryRepo, statsCache, log)
	fileService := service.NewFileService(fileRepo, blobStore, log)

	e := api.NewRouter(api.RouterConfig{
		AuthService:     authService,
		TokenService:    tokenService,
		Users:           userRepo,
		PostService:     postService,
		CommentService:  commentService,
		CategoryService: categoryService,
		UserService:     userService,
		StatsService:    statsService,
		FileService:     fileService,
		Mongo:           db,
		Redis:           rdb,
		UploadDir:       cfg.UploadDir,
		Logger:          log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
}

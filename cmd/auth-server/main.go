package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/lightechllc/authcore/api/swagger"
	"github.com/lightechllc/authcore/internal/handler"
	"github.com/lightechllc/authcore/internal/middleware"
	"github.com/lightechllc/authcore/internal/repository"
	"github.com/lightechllc/authcore/internal/service"
	"github.com/lightechllc/authcore/pkg/cache"
	"github.com/lightechllc/authcore/pkg/config"
	"github.com/lightechllc/authcore/pkg/database"
	"github.com/lightechllc/authcore/pkg/jobs"
	"github.com/lightechllc/authcore/pkg/logger"
	corsmiddleware "github.com/lightechllc/authcore/pkg/middleware/cors"
	reqidmiddleware "github.com/lightechllc/authcore/pkg/middleware/requestid"
)

// @title AuthCore
// @version 1.0.0
// @description OAuth2 authorization server core (RFC 6749 / 7009 / 7662)
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}

	clientRepo := repository.NewClientRepository(db)
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	tokenCache := repository.NewTokenCache(redisClient, logr)
	defer tokenCache.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	oauthSvc := service.NewOAuthService(
		service.Repos{
			Clients: clientRepo,
			Users:   userRepo,
			Tokens:  tokenRepo,
			Cache:   tokenCache,
		},
		validator.New(),
		logr,
		service.OAuthConfig{
			AccessTokenTTL:        cfg.OAuth.AccessTokenTTL,
			RefreshTokenTTL:       cfg.OAuth.RefreshTokenTTL,
			DefaultScopes:         cfg.OAuth.DefaultScopes,
			RevokeCascade:         cfg.OAuth.RevokeCascade,
			TokenLength:           cfg.OAuth.TokenLength,
			IncludeUserInResponse: cfg.OAuth.IncludeUserInResponse,
		},
		service.WithMetrics(metricsSvc),
	)

	oauthHandler := handler.NewOAuthHandler(oauthSvc)
	userInfoHandler := handler.NewUserInfoHandler()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	oauth := r.Group("/oauth")
	{
		oauth.POST("/token", oauthHandler.Token)
		oauth.POST("/revoke", oauthHandler.Revoke)
		oauth.POST("/introspect", oauthHandler.Introspect)
	}

	protected := r.Group("/", middleware.Bearer(oauthSvc, logr))
	{
		protected.GET("/userinfo", middleware.Audit(userRepo, "userinfo"), userInfoHandler.UserInfo)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Maintenance.Enabled {
		maintenanceSvc := service.NewMaintenanceService(tokenRepo, logr, cfg.Maintenance.RetainFor)
		scheduler := jobs.NewScheduler(logr)
		scheduler.Register(jobs.Task{
			Name:     "purge_expired_tokens",
			Interval: cfg.Maintenance.PurgeInterval,
			Retries:  cfg.Maintenance.WorkerRetries,
			Run:      maintenanceSvc.PurgeExpiredTokens,
		})
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}

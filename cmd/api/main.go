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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/kyd-academy/feedback-api/api/swagger"
	"github.com/kyd-academy/feedback-api/internal/handler"
	"github.com/kyd-academy/feedback-api/internal/message"
	appmiddleware "github.com/kyd-academy/feedback-api/internal/middleware"
	"github.com/kyd-academy/feedback-api/internal/repository"
	"github.com/kyd-academy/feedback-api/internal/service"
	"github.com/kyd-academy/feedback-api/internal/week"
	"github.com/kyd-academy/feedback-api/pkg/config"
	"github.com/kyd-academy/feedback-api/pkg/kv"
	"github.com/kyd-academy/feedback-api/pkg/logger"
	corsmiddleware "github.com/kyd-academy/feedback-api/pkg/middleware/cors"
	reqidmiddleware "github.com/kyd-academy/feedback-api/pkg/middleware/requestid"
)

// @title Exam Feedback API
// @version 0.1.0
// @description Weekly mock-exam configuration and Korean feedback message generation
// @BasePath /api/v1
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	redisClient, err := kv.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect redis", "error", err)
	}
	defer redisClient.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	store := repository.NewInstrumentedStore(repository.NewRedisStore(redisClient), metricsSvc.ObserveKVOperation)
	settingsRepo := repository.NewSettingsRepository(store, logr)
	templateRepo := repository.NewTemplateRepository(store, logr)
	recordRepo := repository.NewRecordRepository(store, logr)

	weeks := week.NewCalculator(nil)
	generator := message.NewGenerator(weeks)

	settingsSvc := service.NewSettingsService(settingsRepo, nil, logr)
	messageSvc := service.NewMessageService(settingsRepo, templateRepo, recordRepo, generator, nil, logr, nil)
	rolloverSvc := service.NewRolloverService(recordRepo, cfg.Records, logr, nil)

	weekHandler := handler.NewWeekHandler(weeks, settingsSvc)
	configHandler := handler.NewConfigHandler(settingsSvc)
	messageHandler := handler.NewMessageHandler(messageSvc, metricsSvc)
	templateHandler := handler.NewTemplateHandler(messageSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(appmiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/weeks", weekHandler.List)
		api.GET("/weeks/current", weekHandler.Current)
		api.GET("/weeks/completeness", weekHandler.Completeness)
		api.PUT("/weeks/cuts", weekHandler.SetCuts)

		api.GET("/configs", configHandler.Get)
		api.GET("/configs/editor", configHandler.Editor)
		api.PUT("/configs", configHandler.Save)
		api.POST("/configs/explanations", configHandler.UpsertExplanation)
		api.DELETE("/configs/explanations", configHandler.DeleteExplanation)
		api.PUT("/configs/difficulty", configHandler.SetDifficulty)

		api.POST("/messages/preview", messageHandler.Preview)
		api.POST("/messages", messageHandler.Compose)

		api.GET("/records/today", messageHandler.Today)
		api.GET("/records", messageHandler.ByDate)
		api.DELETE("/records/:id", messageHandler.Delete)

		api.GET("/template", templateHandler.Get)
		api.PUT("/template", templateHandler.Save)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rolloverSvc.Start(ctx)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}

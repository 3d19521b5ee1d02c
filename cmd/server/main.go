package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"weddingplanner/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"weddingplanner/internal/auth"
	"weddingplanner/internal/config"
	"weddingplanner/internal/db"
	"weddingplanner/internal/logger"
	"weddingplanner/internal/router"
	"weddingplanner/internal/service"
)

// @title Wedding Planner API
// @version 1.0
// @description Wedding planning API with budgets, guests, vendors, tasks, venues and a progress dashboard.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := db.Open(ctx, cfg)
	if err != nil {
		log.Error("store init", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			log.Warn("store close", "error", err)
		}
	}()

	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		log.Error("password hasher", "error", err)
		os.Exit(1)
	}
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	authService := service.NewAuthService(repos.Users, hasher, jwtService, cfg.TokenTTL, log)
	recordServices := service.NewRecordServices(repos, cfg.ListLimit, log)
	dashboardService := service.NewDashboardService(repos, cfg.ListLimit)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, log, authService, router.NewHandlers(authService, recordServices, dashboardService))

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	log.Info("swagger documentation available", "path", "/swagger/index.html")

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server starting", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}

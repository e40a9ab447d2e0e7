package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jengzang/futbol-backend-go/internal/api"
	"github.com/jengzang/futbol-backend-go/internal/config"
	"github.com/jengzang/futbol-backend-go/internal/database"
	"github.com/jengzang/futbol-backend-go/internal/middleware"
	"github.com/jengzang/futbol-backend-go/internal/selection"
	"github.com/jengzang/futbol-backend-go/internal/statsbomb"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// 初始化数据库
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracker := selection.NewTracker(cfg.Selection.SessionIdle)
	go tracker.Run(ctx)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	go limiter.Run(ctx)

	// 初始化路由
	router, err := api.SetupRouter(api.Deps{
		Config:   cfg,
		DB:       database.GetDB(),
		Tracker:  tracker,
		Limiter:  limiter,
		Provider: statsbomb.NewClient(cfg.StatsBomb.BaseURL, cfg.StatsBomb.Timeout),
	})
	if err != nil {
		log.Fatal("Failed to set up router:", err)
	}

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动服务器
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

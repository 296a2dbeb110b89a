package main

import (
	"Showcase/internal/api/config"
	"Showcase/internal/pkg/cron"
	"Showcase/internal/pkg/database"
	"Showcase/internal/pkg/logger"
	"Showcase/internal/pkg/redis"
	"Showcase/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger()

	// 数据库连接，DSN 缺省时走本地降级，不视为致命错误
	var db *gorm.DB
	if cfg.DB.DSN != "" {
		var err error
		db, err = database.NewGormDB(&cfg.DB)
		if err != nil {
			log.Error("Fatal error: failed to create database connection", "err", err)
			panic(err)
		}
	} else {
		log.Warn("Database DSN not configured, remote store disabled")
	}

	// Redis 连接，缺省时总线与点赞集合退化为进程内实现
	redisReady := false
	if cfg.Redis.Addr != "" {
		if err := redis.InitRedis(cfg.Redis); err != nil {
			log.Error("Fatal error: failed to create redis connection", "err", err)
			panic(err)
		}
		redisReady = true
	} else {
		log.Warn("Redis not configured, using in-process change bus")
	}

	// 依赖注入
	app, err := wire.BuildApplication(db, redisReady, cfg)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// 内容同步控制器：首次拉取 + 变更监听
	app.BlogSvc.Start(ctx)
	app.GuestbookSvc.Start(ctx)

	// 定时任务
	err = cron.InitCron(app.CronMgr)
	if err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Cron Jobs stopping...")
		app.CronMgr.Stop()
		return nil
	})

	// HTTP 服务器
	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: app.Router,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error("HTTP Server shutdown failed", "err", shutdownErr)
		}
		return nil
	})

	if waitErr := g.Wait(); waitErr != nil && !errors.Is(waitErr, context.Canceled) {
		log.Error("App exited with error", "err", waitErr)
	}
	log.Info("App exited successfully.")
}

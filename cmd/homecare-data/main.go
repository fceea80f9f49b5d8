package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"homecare-data/internal/cli"
	"homecare-data/internal/config"
	httpapi "homecare-data/internal/http"
	"homecare-data/internal/logger"
	"homecare-data/internal/service"
	"homecare-data/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "homecare-data: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "homecare-data")
	if err != nil {
		fmt.Fprintf(os.Stderr, "homecare-data: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	st, err := cli.OpenStore(cfg)
	if err != nil {
		log.Error("failed to open document store", zap.Error(err))
		os.Exit(1)
	}

	// 仪表板统计缓存：redis 后端复用同一实例，其余后端用进程内缓存
	var statsCache store.KV
	var redisClient *redis.Client
	if cfg.StoreBackend == config.BackendRedis {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		statsCache = store.NewRedisKV(redisClient)
	} else {
		statsCache = store.NewMemoryKV()
	}

	cases := service.NewCaseService(st, log)
	caregivers := service.NewCaregiverService(st, log)
	dashboard := service.NewDashboardService(st, statsCache, log)

	router := httpapi.NewRouter(log)
	router.RegisterCareRoutes(httpapi.NewCareHandler(cases, caregivers, dashboard, log))

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case <-errCh:
	}

	// 关机宽限期要挂在独立的 context 上，否则 Shutdown 立即返回不排空连接
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if pg, ok := st.(*store.PostgresStore); ok {
		_ = pg.Close()
	}
}

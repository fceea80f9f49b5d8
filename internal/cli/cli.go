package cli

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"homecare-data/internal/config"
	"homecare-data/internal/logger"
	"homecare-data/internal/store"
)

// Setup 导入工具共用的准备段：配置 -> 日志 -> 存储
// 配置校验在这里失败就意味着没有任何行被处理过。
func Setup(serviceName string) (*config.Config, *zap.Logger, store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	st, err := OpenStore(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, st, nil
}

// OpenStore 按配置选择文档存储后端
func OpenStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		return store.NewPostgresStore(cfg.Database.DSN())
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return store.NewRedisStore(client), nil
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

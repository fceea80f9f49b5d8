package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// 支持的存储后端
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// ConfigurationError 缺少必要的环境变量（启动前快速失败，不进入任何行处理）
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

// DatabaseConfig Postgres 连接配置
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN 组装 lib/pq 连接串
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode)
}

// Config homecare-data（导入工具与 HTTP API）配置
type Config struct {
	HTTP struct {
		Addr string
	}
	StoreBackend string
	Database     DatabaseConfig
	Redis        struct {
		Addr     string
		Password string
		DB       int
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load 从环境变量加载配置
// 导入管道要求在任何行处理开始前校验存储凭证；缺失时返回 *ConfigurationError。
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")
	cfg.StoreBackend = getEnv("STORE_BACKEND", BackendPostgres)

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	cfg.Database.Database = getEnv("DB_NAME", "homecare")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	switch c.StoreBackend {
	case BackendPostgres:
		if c.Database.Password == "" {
			missing = append(missing, "DB_PASSWORD")
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			missing = append(missing, "REDIS_ADDR")
		}
	case BackendMemory:
		// 内存后端仅用于开发和测试，无凭证
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (expected postgres, redis or memory)", c.StoreBackend)
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

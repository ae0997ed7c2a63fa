package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/perpustakaan/internal/infrastructure/config"
	"github.com/xiebiao/perpustakaan/pkg/logger"
)

// NewClient 创建Redis客户端
// 设计说明：
// 1. 连接池参数来自配置（PoolSize、MinIdleConns）
// 2. 启动时Ping一次，连不上直接失败（fail fast）
func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("gagal terhubung ke Redis: %w", err)
	}

	log := logger.Get()
	log.Info().Str("addr", cfg.Redis.Addr()).Msg("redis connected")

	return client, nil
}

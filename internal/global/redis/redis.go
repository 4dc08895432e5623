package redis

import (
	"context"
	"time"

	"lab-website-system/config"
	"lab-website-system/internal/global/logger"

	goredis "github.com/redis/go-redis/v9"
)

// Client 未配置 Redis 时保持 nil，调用方自行降级
var Client *goredis.Client

const denyKeyPrefix = "token_denylist:"

func Init() {
	cfg := config.Get().Redis
	if cfg.Host == "" {
		return
	}

	Client = goredis.NewClient(&goredis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Client.Ping(ctx).Err(); err != nil {
		logger.New("Redis").Warn("Redis 连接失败，登出吊销不可用", "error", err)
		Client = nil
	}
}

// DenyToken 将令牌加入吊销名单，保留到其自然过期
func DenyToken(ctx context.Context, token string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(ctx, denyKeyPrefix+token, 1, ttl).Err()
}

// IsTokenDenied 检查令牌是否已被吊销
func IsTokenDenied(ctx context.Context, token string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(ctx, denyKeyPrefix+token).Result()
	return err == nil && n > 0
}

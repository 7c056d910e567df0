package di

import (
	"github.com/JoeShih716/go-wallet-mockapi/internal/config"
	infraRedis "github.com/JoeShih716/go-wallet-mockapi/internal/infrastructure/redis"
)

// InitializeRedisProvider 建立共用的 Redis Provider。
// 只有實際用到 Redis 的元件才會觸發連線。
func InitializeRedisProvider(cfg *config.Config) *infraRedis.Provider {
	return infraRedis.NewProvider(cfg.Redis)
}

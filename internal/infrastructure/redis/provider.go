package redis

import (
	"fmt"
	"sync"

	"github.com/JoeShih716/go-wallet-mockapi/internal/config"
	pkgRedis "github.com/JoeShih716/go-wallet-mockapi/pkg/redis"
)

// Provider 延遲建立並共用單一 Redis 連線。
// snapshot 與事件發送可能同時使用 Redis，但只需要一條連線。
type Provider struct {
	cfg config.RedisConfig

	mu     sync.Mutex
	client *pkgRedis.Client
}

// NewProvider 建立 Provider，此時尚未連線
func NewProvider(cfg config.RedisConfig) *Provider {
	return &Provider{cfg: cfg}
}

// Client 回傳共用的 Redis 客戶端，第一次呼叫時才連線
func (p *Provider) Client() (*pkgRedis.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	if p.cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is not configured")
	}

	client, err := pkgRedis.NewClient(pkgRedis.Config{
		Addr:     p.cfg.Addr,
		Password: p.cfg.Password,
		DB:       p.cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}
	p.client = client
	return client, nil
}

// Close 關閉已建立的連線
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client == nil {
		return nil
	}
	err := p.client.Close()
	p.client = nil
	return err
}

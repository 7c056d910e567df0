package redis

import (
	"context"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
	"github.com/JoeShih716/go-wallet-mockapi/internal/core/ports"
	"github.com/JoeShih716/go-wallet-mockapi/pkg/redis"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// Publisher 將事件以 JSON 發送到 Redis 頻道，供其他程序 (例如 UI 的 e2e 測試) 訂閱
type Publisher struct {
	rds     *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{rds: client, channel: channel}
}

// Publish implements ports.EventPublisher.
func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	return p.rds.PublishJSON(ctx, p.channel, event)
}

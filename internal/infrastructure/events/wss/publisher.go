package wss

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
	"github.com/JoeShih716/go-wallet-mockapi/internal/core/ports"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// Broadcaster 是 pkg/wss.Server 提供的廣播能力
type Broadcaster interface {
	Broadcast(msg []byte)
}

// Publisher 將事件以 JSON 推送給所有 websocket 客戶端
type Publisher struct {
	server Broadcaster
}

func NewPublisher(server Broadcaster) *Publisher {
	return &Publisher{server: server}
}

// Publish implements ports.EventPublisher.
func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	p.server.Broadcast(data)
	return nil
}

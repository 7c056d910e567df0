package ports

import (
	"context"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
)

// EventPublisher 定義資料異動事件的發送介面
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_event_publisher.go -package=mock_ports github.com/JoeShih716/go-wallet-mockapi/internal/core/ports EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

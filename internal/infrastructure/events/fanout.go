package events

import (
	"context"
	"errors"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
	"github.com/JoeShih716/go-wallet-mockapi/internal/core/ports"
)

var _ ports.EventPublisher = Fanout(nil)

// Fanout 將事件依序送給每一個 publisher，所有錯誤合併後回傳
type Fanout []ports.EventPublisher

// Publish implements ports.EventPublisher.
func (f Fanout) Publish(ctx context.Context, event domain.Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

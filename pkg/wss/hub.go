package wss

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// hub 持有所有連線，所有 map 操作都在 run goroutine 中進行
type hub struct {
	ctx        context.Context
	logger     *slog.Logger
	clients    map[*connection]struct{}
	register   chan *connection
	unregister chan *connection
	messages   chan []byte
	count      atomic.Int64
}

func newHub(ctx context.Context, logger *slog.Logger) *hub {
	return &hub{
		ctx:        ctx,
		logger:     logger,
		clients:    make(map[*connection]struct{}),
		register:   make(chan *connection),
		unregister: make(chan *connection),
		messages:   make(chan []byte, 256),
	}
}

func (h *hub) broadcast(msg []byte) {
	select {
	case h.messages <- msg:
	case <-h.ctx.Done():
	}
}

func (h *hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Store(int64(len(h.clients)))
		case c := <-h.unregister:
			h.remove(c)
		case msg := <-h.messages:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// 佇列已滿，視為慢速客戶端直接斷線
					h.logger.Warn("dropping slow client")
					h.remove(c)
				}
			}
		case <-h.ctx.Done():
			for c := range h.clients {
				h.remove(c)
			}
			return
		}
	}
}

func (h *hub) remove(c *connection) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.count.Store(int64(len(h.clients)))
}

package memory

import (
	"log/slog"
	"time"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/ports"
)

// Option 設定 Store 的選填依賴
type Option func(*Store)

// WithClock 替換時間來源 (測試用)
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSnapshotStore 設定每次異動後的持久化目標
func WithSnapshotStore(snapshots ports.SnapshotStore) Option {
	return func(s *Store) { s.snapshots = snapshots }
}

// WithPublisher 設定異動事件的發送目標
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *Store) { s.publisher = publisher }
}

// WithLogger 設定 logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithIDGenerator 替換交易與投資的 ID 產生器 (測試用)
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

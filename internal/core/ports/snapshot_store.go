package ports

import (
	"context"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
)

// SnapshotStore 定義整份資料集的持久化介面 (取代瀏覽器的 local storage)
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_snapshot_store.go -package=mock_ports github.com/JoeShih716/go-wallet-mockapi/internal/core/ports SnapshotStore
type SnapshotStore interface {
	// Load 讀取資料集，不存在時回傳 ErrSnapshotNotFound
	Load(ctx context.Context) (*domain.Snapshot, error)

	// Save 覆寫資料集
	Save(ctx context.Context, snapshot *domain.Snapshot) error
}

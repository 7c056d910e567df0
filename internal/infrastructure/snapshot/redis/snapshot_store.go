package redis

import (
	"context"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
	"github.com/JoeShih716/go-wallet-mockapi/internal/core/ports"
	"github.com/JoeShih716/go-wallet-mockapi/pkg/redis"
)

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore 將資料集以 JSON 存放在 Redis 的單一鍵下
type SnapshotStore struct {
	rds *redis.Client
	key string
}

// NewSnapshotStore 建立 Redis SnapshotStore
func NewSnapshotStore(client *redis.Client, key string) *SnapshotStore {
	return &SnapshotStore{rds: client, key: key}
}

// Load implements ports.SnapshotStore.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	var snapshot domain.Snapshot
	if err := s.rds.GetJSON(ctx, s.key, &snapshot); err != nil {
		if redis.IsNil(err) {
			return nil, ports.ErrSnapshotNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

// Save implements ports.SnapshotStore.
func (s *SnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	return s.rds.SetJSON(ctx, s.key, snapshot, 0)
}

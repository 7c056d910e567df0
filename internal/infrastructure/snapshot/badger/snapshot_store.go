package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
	"github.com/JoeShih716/go-wallet-mockapi/internal/core/ports"
)

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore 將資料集以 msgpack 編碼存放在本機 badger 資料庫的單一鍵下
type SnapshotStore struct {
	db  *badger.DB
	key []byte
}

// Open 開啟 (或建立) dir 下的 badger 資料庫
func Open(dir, key string) (*SnapshotStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %s: %w", dir, err)
	}
	return New(db, key), nil
}

// New 以既有的 badger.DB 建立 SnapshotStore
func New(db *badger.DB, key string) *SnapshotStore {
	return &SnapshotStore{db: db, key: []byte(key)}
}

// Load implements ports.SnapshotStore.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	var snapshot *domain.Snapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ports.ErrSnapshotNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			snapshot = &domain.Snapshot{}
			return msgpack.Unmarshal(val, snapshot)
		})
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Save implements ports.SnapshotStore.
func (s *SnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := msgpack.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key, data)
	})
}

// Close 關閉底層資料庫
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

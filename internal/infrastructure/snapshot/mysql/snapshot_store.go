package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
	"github.com/JoeShih716/go-wallet-mockapi/internal/core/ports"
	mysqlpkg "github.com/JoeShih716/go-wallet-mockapi/pkg/mysql"
)

// ensure interface compliance
var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// snapshotRecord 對應 mock_snapshots 資料表
type snapshotRecord struct {
	Key       string    `gorm:"column:snapshot_key;primaryKey;size:64"`
	Data      []byte    `gorm:"column:data;type:longblob"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (snapshotRecord) TableName() string { return "mock_snapshots" }

// SnapshotStore 實作 ports.SnapshotStore，以單列 JSON 儲存整份資料集
type SnapshotStore struct {
	client *mysqlpkg.Client
	key    string
}

// NewSnapshotStore 建立 MySQL SnapshotStore
func NewSnapshotStore(client *mysqlpkg.Client, key string) *SnapshotStore {
	return &SnapshotStore{client: client, key: key}
}

// Migrate 建立 (或更新) mock_snapshots 資料表
func (s *SnapshotStore) Migrate(ctx context.Context) error {
	return s.client.DB().WithContext(ctx).AutoMigrate(&snapshotRecord{})
}

// Load implements ports.SnapshotStore.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	var rec snapshotRecord
	err := s.client.DB().WithContext(ctx).Where("snapshot_key = ?", s.key).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrSnapshotNotFound
		}
		return nil, err
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(rec.Data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snapshot, nil
}

// Save implements ports.SnapshotStore.
func (s *SnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	rec := snapshotRecord{Key: s.key, Data: data, UpdatedAt: time.Now().UTC()}
	return s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
}

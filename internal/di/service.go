package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JoeShih716/go-wallet-mockapi/internal/config"
	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
	"github.com/JoeShih716/go-wallet-mockapi/internal/core/ports"
	"github.com/JoeShih716/go-wallet-mockapi/internal/infrastructure/events"
	redisEvents "github.com/JoeShih716/go-wallet-mockapi/internal/infrastructure/events/redis"
	wssEvents "github.com/JoeShih716/go-wallet-mockapi/internal/infrastructure/events/wss"
	infraRedis "github.com/JoeShih716/go-wallet-mockapi/internal/infrastructure/redis"
	badgerSnapshot "github.com/JoeShih716/go-wallet-mockapi/internal/infrastructure/snapshot/badger"
	mysqlSnapshot "github.com/JoeShih716/go-wallet-mockapi/internal/infrastructure/snapshot/mysql"
	redisSnapshot "github.com/JoeShih716/go-wallet-mockapi/internal/infrastructure/snapshot/redis"
	"github.com/JoeShih716/go-wallet-mockapi/internal/infrastructure/store/memory"
	"github.com/JoeShih716/go-wallet-mockapi/pkg/mysql"
)

// Closer 釋放 Provide* 建立的資源
type Closer func() error

func noopCloser() error { return nil }

// ProvideSnapshotStore 依 storage.driver 選擇持久化實作
//
// 參數:
//
//	ctx: context.Context - 上下文 (mysql migrate 使用)
//	cfg: *config.Config - 設定
//	redisProvider: *infraRedis.Provider - 共用 Redis 連線
//
// 回傳值:
//
//	ports.SnapshotStore: memory driver 時為 nil
//	Closer: 關閉底層連線
//	error: 連線或初始化失敗
func ProvideSnapshotStore(ctx context.Context, cfg *config.Config, redisProvider *infraRedis.Provider) (ports.SnapshotStore, Closer, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return nil, noopCloser, nil

	case config.DriverBadger:
		store, err := badgerSnapshot.Open(cfg.Storage.BadgerDir, cfg.Storage.Key)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case config.DriverRedis:
		client, err := redisProvider.Client()
		if err != nil {
			return nil, nil, err
		}
		// 連線由 redisProvider 統一關閉
		return redisSnapshot.NewSnapshotStore(client, cfg.Storage.Key), noopCloser, nil

	case config.DriverMySQL:
		client, err := mysql.NewClient(mysql.Config{
			Host:     cfg.MySQL.Host,
			Port:     cfg.MySQL.Port,
			User:     cfg.MySQL.User,
			Password: cfg.MySQL.Password,
			DBName:   cfg.MySQL.DBName,
		})
		if err != nil {
			return nil, nil, err
		}
		store := mysqlSnapshot.NewSnapshotStore(client, cfg.Storage.Key)
		if err := store.Migrate(ctx); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return store, client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// ProvideEventPublisher 組合事件發送端:
// websocket 推播一定啟用，設定 events.redis_channel 時同時發送到 Redis。
func ProvideEventPublisher(cfg *config.Config, redisProvider *infraRedis.Provider, broadcaster wssEvents.Broadcaster, logger *slog.Logger) (ports.EventPublisher, error) {
	publishers := events.Fanout{wssEvents.NewPublisher(broadcaster)}

	if cfg.Events.RedisChannel != "" {
		client, err := redisProvider.Client()
		if err != nil {
			return nil, err
		}
		publishers = append(publishers, redisEvents.NewPublisher(client, cfg.Events.RedisChannel))
		logger.Info("Publishing events to redis", "channel", cfg.Events.RedisChannel)
	}
	return publishers, nil
}

// ProvideStore 建立 backing store:
// 優先讀取已持久化的資料集，否則使用 api.seed_file 或內建的初始資料。
func ProvideStore(ctx context.Context, cfg *config.Config, snapshots ports.SnapshotStore, publisher ports.EventPublisher, logger *slog.Logger) (*memory.Store, error) {
	seed := func() *domain.Snapshot { return memory.DefaultSeed(time.Now()) }

	if cfg.API.SeedFile != "" {
		data, err := memory.ReadSeedFile(cfg.API.SeedFile)
		if err != nil {
			return nil, err
		}
		seed = func() *domain.Snapshot { return data }
	}

	return memory.Load(ctx, snapshots, seed,
		memory.WithPublisher(publisher),
		memory.WithLogger(logger),
	)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/JoeShih716/go-wallet-mockapi/internal/di"
	"github.com/JoeShih716/go-wallet-mockapi/internal/kit/bootstrap"
	"github.com/JoeShih716/go-wallet-mockapi/internal/mockapi"
	"github.com/JoeShih716/go-wallet-mockapi/internal/server"
	"github.com/JoeShih716/go-wallet-mockapi/pkg/wss"
)

func main() {
	// 1. 初始化 App (載入 Config, Logger)
	app := bootstrap.NewApp("mockapi")
	if err := run(app); err != nil {
		slog.Error("mockapi exited", "error", err)
		os.Exit(1)
	}
}

// run 組裝所有依賴並阻塞到服務結束
func run(app *bootstrap.App) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. 初始化資源 (Redis 延遲連線, 持久化)
	redisProvider := di.InitializeRedisProvider(app.Config)
	defer redisProvider.Close()

	snapshots, closeSnapshots, err := di.ProvideSnapshotStore(ctx, app.Config, redisProvider)
	if err != nil {
		return fmt.Errorf("snapshot store (%s): %w", app.Config.Storage.Driver, err)
	}
	defer func() {
		if err := closeSnapshots(); err != nil {
			slog.Warn("Failed to close snapshot store", "error", err)
		}
	}()
	slog.Info("Snapshot store initialized", "driver", app.Config.Storage.Driver)

	// 3. 事件推播 (websocket + 選填的 redis 頻道)
	events := wss.NewServer(ctx, &wss.Config{
		AllowedOrigins:  app.Config.API.AllowedOrigins,
		ReadBufferSize:  app.Config.Events.ReadBufferSize,
		WriteBufferSize: app.Config.Events.WriteBufferSize,
		PongWait:        time.Duration(app.Config.Events.PongWaitSec) * time.Second,
	}, app.Logger)

	publisher, err := di.ProvideEventPublisher(app.Config, redisProvider, events, app.Logger)
	if err != nil {
		return fmt.Errorf("event publisher: %w", err)
	}

	// 4. Backing store 與 Adapter
	store, err := di.ProvideStore(ctx, app.Config, snapshots, publisher, app.Logger)
	if err != nil {
		return fmt.Errorf("backing store: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	adapter := mockapi.NewAdapter(store, mockapi.NewMetrics(registry), app.Logger)

	// 5. 啟動服務
	srv := server.New(server.Config{
		Addr:           fmt.Sprintf(":%d", app.Config.App.Port),
		Prefix:         app.Config.API.Prefix,
		EventsPath:     app.Config.Events.Path,
		AllowedOrigins: app.Config.API.AllowedOrigins,
	}, adapter, events, registry, app.Logger)

	return app.Run(srv.Run, func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP server shutdown failed", "error", err)
		}
		cancel()
	})
}

package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JoeShih716/go-wallet-mockapi/internal/config"
)

// App 持有程序共用的 Config 與 Logger
type App struct {
	Name   string
	Config *config.Config
	Logger *slog.Logger

	signals []os.Signal
}

// NewApp 載入 config/config.yaml (含 .env 與環境變數覆蓋) 並設定全域 Logger。
// 設定無法載入時直接結束程序。
func NewApp(appName string, configDir ...string) *App {
	slog.SetDefault(NewLogger("", os.Stdout))

	cfg, err := config.Load(configDir...)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	return New(appName, cfg, os.Stdout)
}

// New 以已載入的設定建立 App，並將 Logger 設為 slog 預設值
func New(appName string, cfg *config.Config, out io.Writer) *App {
	logger := NewLogger(cfg.App.Env, out).With("app", appName)
	slog.SetDefault(logger)
	return &App{
		Name:    appName,
		Config:  cfg,
		Logger:  logger,
		signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}
}

// NewLogger 依環境選擇 handler: prod 使用 JSON，其餘使用易讀的 Text
func NewLogger(env string, out io.Writer) *slog.Logger {
	switch env {
	case "production", "prod":
		return slog.New(slog.NewJSONHandler(out, nil))
	case "local", "dev":
		return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(out, nil))
	}
}

// Run 在背景執行 start，直到收到停止信號或 start 回傳錯誤，接著呼叫 cleanup。
//
// 參數:
//
//	start: func() error - 阻塞式的服務啟動函式 (例如 server.Run)
//	cleanup: func() - 停止時的清理邏輯，可為 nil
//
// 回傳值:
//
//	error: start 失敗時的錯誤
func (a *App) Run(start func() error, cleanup func()) error {
	ctx, stop := signal.NotifyContext(context.Background(), a.signals...)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("Starting service", "env", a.Config.App.Env)
		errCh <- start()
	}()

	var err error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutting down service...")
	case err = <-errCh:
		if err != nil {
			a.Logger.Error("Service stopped with error", "error", err)
		}
	}

	if cleanup != nil {
		cleanup()
	}
	a.Logger.Info("Service exited")
	return err
}

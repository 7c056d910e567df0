package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/JoeShih716/go-wallet-mockapi/internal/mockapi"
)

// Config HTTP 伺服器設定
type Config struct {
	Addr           string   // 監聽地址 (e.g. ":8080")
	Prefix         string   // mock API 路徑前綴
	EventsPath     string   // websocket 事件端點，空字串代表不掛載
	AllowedOrigins []string // CORS 允許的 Origin，空代表全部
}

// Server 將 mock API 以真正的 HTTP 服務提供給瀏覽器端使用
type Server struct {
	cfg        Config
	httpServer *http.Server
	logger     *slog.Logger
}

// New 建立 Server 並設定路由
//
// 參數:
//
//	cfg: Config - 伺服器設定
//	adapter: *mockapi.Adapter - 處理 {prefix}/* 的請求
//	events: http.Handler - websocket 事件端點，可為 nil
//	gatherer: prometheus.Gatherer - /metrics 的資料來源，可為 nil
//	logger: *slog.Logger - 日誌
//
// 回傳值:
//
//	*Server: 尚未啟動的伺服器
func New(cfg Config, adapter *mockapi.Adapter, events http.Handler, gatherer prometheus.Gatherer, logger *slog.Logger) *Server {
	if cfg.Prefix == "" {
		cfg.Prefix = mockapi.DefaultPrefix
	}
	cfg.Prefix = "/" + strings.Trim(cfg.Prefix, "/")

	s := &Server{
		cfg:    cfg,
		logger: logger.With("component", "http_server"),
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	if events != nil && cfg.EventsPath != "" {
		r.Handle(cfg.EventsPath, events)
	}
	r.Handle(cfg.Prefix+"/*", http.StripPrefix(cfg.Prefix, adapter))

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.corsHandler().Handler(r),
		ReadHeaderTimeout: 7 * time.Second,
		IdleTimeout:       30 * time.Second,
	}
	return s
}

// Handler 回傳包含 CORS 的完整 handler，方便測試
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run 監聽並提供服務，直到 Shutdown 被呼叫
func (s *Server) Run() error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// Serve 在指定的 listener 上提供服務
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("HTTP server listening", "addr", listener.Addr().String(), "prefix", s.cfg.Prefix)
	if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown 優雅關閉伺服器
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) corsHandler() *cors.Cors {
	if len(s.cfg.AllowedOrigins) == 0 {
		return cors.AllowAll()
	}
	return cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	})
}

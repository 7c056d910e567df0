package wss

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Server 是 websocket package 對外的主要門面 (Facade)，並實現了 http.Handler 介面。
// 這裡的連線是單向的廣播通道: 伺服器推送，客戶端只需維持心跳。
type Server struct {
	hub    *hub
	cfg    *Config
	logger *slog.Logger
}

// 確保 Server 實現了 http.Handler 介面
var _ http.Handler = (*Server)(nil)

// NewServer 創建並設定一個完整的 WebSocket 伺服器。
// hub 會在 ctx 結束時關閉所有連線。
//
// 參數:
//
//	ctx: context.Context - 用於控制伺服器生命週期的上下文
//	cfg: *Config - WebSocket 伺服器的設定參數
//	logger: *slog.Logger - 日誌
//
// 回傳值:
//
//	*Server: 初始化完成的 WebSocket 伺服器實例
func NewServer(ctx context.Context, cfg *Config, logger *slog.Logger) *Server {
	h := newHub(ctx, logger.With("component", "hub"))
	go h.run()
	return &Server{
		hub:    h,
		cfg:    cfg.withDefaults(),
		logger: logger.With("component", "wss_server"),
	}
}

// Broadcast 將訊息推送給所有已連線的客戶端
func (s *Server) Broadcast(msg []byte) {
	s.hub.broadcast(msg)
}

// Count 回傳目前的連線數
func (s *Server) Count() int64 {
	return s.hub.count.Load()
}

// ServeHTTP 實現 http.Handler 介面，處理 WebSocket 的升級請求。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  s.cfg.ReadBufferSize,
		WriteBufferSize: s.cfg.WriteBufferSize,
		CheckOrigin:     s.checkOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := newConnection(s.hub, conn, s.cfg, s.logger.With("component", "client", "remote", r.RemoteAddr))
	select {
	case s.hub.register <- c:
	case <-s.hub.ctx.Done():
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	// 沒有 Origin 標頭通常是非瀏覽器請求，允許
	if origin == "" {
		return true
	}
	// 未設定 AllowedOrigins 時只允許同源
	if len(s.cfg.AllowedOrigins) == 0 {
		return origin == "http://"+r.Host || origin == "https://"+r.Host
	}
	for _, allowed := range s.cfg.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

package wss

import "time"

// Config WebSocket 伺服器設定
type Config struct {
	AllowedOrigins  []string      // 允許的 Origin，"*" 代表全部
	ReadBufferSize  int           // 讀取緩衝區大小
	WriteBufferSize int           // 寫入緩衝區大小
	WriteWait       time.Duration // 單次寫入逾時
	PongWait        time.Duration // 等待 pong 的最長時間
	PingPeriod      time.Duration // ping 間隔 (需小於 PongWait)
	MaxMessageSize  int64         // 客戶端訊息大小上限
	SendBufferSize  int           // 每個連線的待送訊息佇列長度
}

func (c *Config) withDefaults() *Config {
	out := *c
	if out.WriteWait == 0 {
		out.WriteWait = 10 * time.Second
	}
	if out.PongWait == 0 {
		out.PongWait = 60 * time.Second
	}
	// 如果 PingPeriod 沒有被設定，則根據 PongWait 計算一個合理的值
	if out.PingPeriod == 0 {
		out.PingPeriod = (out.PongWait * 9) / 10
	}
	if out.MaxMessageSize == 0 {
		out.MaxMessageSize = 4096
	}
	if out.SendBufferSize == 0 {
		out.SendBufferSize = 64
	}
	return &out
}

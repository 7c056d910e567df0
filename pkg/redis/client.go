package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNil 代表鍵不存在
var ErrNil = errors.New("redis: key not found")

const defaultDialTimeout = 3 * time.Second

// Config Redis 連線配置
type Config struct {
	Addr        string        // host:port
	Password    string        // 無密碼時留空
	DB          int           // 資料庫編號
	DialTimeout time.Duration // 0 代表 3 秒
}

// Client 是 go-redis 的薄封裝，只提供 mock 後端用得到的 JSON 讀寫與 pub/sub
type Client struct {
	rdb *redis.Client
}

// NewClient 建立連線並以 PING 確認可用
//
// 參數:
//
//	cfg: Config - 連線配置
//
// 回傳值:
//
//	*Client: 已連線的客戶端
//	error: PING 失敗時回傳錯誤
func NewClient(cfg Config) (*Client, error) {
	timeout := cfg.DialTimeout
	if timeout == 0 {
		timeout = defaultDialTimeout
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return &Client{rdb: rdb}, nil
}

// IsNil 判斷錯誤是否代表鍵不存在
func IsNil(err error) bool {
	return errors.Is(err, ErrNil) || errors.Is(err, redis.Nil)
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// SetJSON 將 value 以 JSON 寫入 key，ttl 為 0 代表不過期
func (c *Client) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}

// GetJSON 讀取 key 並解析到 dest
//
// 回傳值:
//
//	error: 鍵不存在時回傳包裝過的 ErrNil (可用 IsNil 判斷)
func (c *Client) GetJSON(ctx context.Context, key string, dest any) error {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %s", ErrNil, key)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

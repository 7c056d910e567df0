package redis

import (
	"context"
	"encoding/json"
	"fmt"
)

// MessageHandler 定義訂閱訊息的處理函式類型
type MessageHandler func(payload string)

// PublishJSON 將 message 序列化為 JSON 後發送到指定頻道
//
// 參數:
//
//	ctx: context.Context - 上下文
//	channel: string - 目標頻道名稱
//	message: any - 可被 json.Marshal 的物件
//
// 回傳值:
//
//	error: 若序列化或發送失敗則回傳錯誤
func (c *Client) PublishJSON(ctx context.Context, channel string, message any) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return c.rdb.Publish(ctx, channel, data).Err()
}

// Subscribe 訂閱指定頻道並在背景 goroutine 中處理接收到的訊息。
// 回傳的 func 用於取消訂閱。
//
// 參數:
//
//	ctx: context.Context - 上下文
//	channel: string - 要訂閱的頻道名稱
//	handler: MessageHandler - 訊息處理函式
//
// 回傳值:
//
//	func() error: 取消訂閱
//	error: 若訂閱失敗則回傳錯誤
func (c *Client) Subscribe(ctx context.Context, channel string, handler MessageHandler) (func() error, error) {
	pubsub := c.rdb.Subscribe(ctx, channel)

	// Receive 會等待直到接收到訂閱確認訊息或發生錯誤
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	go func() {
		// pubsub 被關閉時 channel 會關閉，迴圈隨之結束
		for msg := range pubsub.Channel() {
			handler(msg.Payload)
		}
	}()

	return pubsub.Close, nil
}

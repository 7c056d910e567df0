package domain

import "time"

// EventType 資料異動事件類型
type EventType string

const (
	EventDeposited         EventType = "wallet.deposited"
	EventCouponUsed        EventType = "coupon.used"
	EventInvestmentCreated EventType = "investment.created"
)

// Event 在每次成功的資料異動後發送，前端可透過 websocket 即時更新畫面
type Event struct {
	Type   EventType `json:"type"`
	UserID int64     `json:"userId"`
	Data   any       `json:"data"`
	At     time.Time `json:"at"`
}
